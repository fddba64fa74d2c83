package crypto

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"drivetube-be/internal/pkg/logger"
)

// usdToBrlRate is the fixed BRL->USD conversion applied when quoting USDT
// amounts. A production deployment would pull this from a rates API.
const usdToBrlRate = 5.20

const defaultExpirationMinutes = 1440 // 24h

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusExpired   Status = "expired"
)

type Config struct {
	WalletAddress  string
	Network        string
	TanosAPIURL    string
	ExplorerAPIURL string
	ExplorerAPIKey string
}

type PaymentRequest struct {
	Amount            float64 // BRL
	Description       string
	ExpirationMinutes int
	Currency          string
	Network           string
}

// PaymentIntent is what the client needs to complete a transfer. Simulated is
// set when the tanos session could not be established and the intent was built
// locally without the extra verification layer.
type PaymentIntent struct {
	WalletAddress  string
	QRCode         string
	TxId           string
	ExpiresAt      time.Time
	Amount         float64
	Currency       string
	Network        string
	ExpectedAmount string
	TanosSession   string
	Simulated      bool
}

type IService interface {
	GeneratePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error)
	CheckStatus(ctx context.Context, txId, network string) (Status, error)
}

type service struct {
	cfg        Config
	httpClient *http.Client
	log        logger.ILogger
	now        func() time.Time
}

func NewService(cfg Config, log logger.ILogger) IService {
	return &service{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
		now:        time.Now,
	}
}

func (s *service) GeneratePayment(ctx context.Context, req PaymentRequest) (*PaymentIntent, error) {
	currency := req.Currency
	if currency == "" {
		currency = "USDT"
	}
	network := req.Network
	if network == "" {
		network = s.cfg.Network
	}
	expirationMinutes := req.ExpirationMinutes
	if expirationMinutes <= 0 {
		expirationMinutes = defaultExpirationMinutes
	}

	txId, err := s.generateTxId()
	if err != nil {
		return nil, fmt.Errorf("generate tx id: %w", err)
	}

	// USDT carries 6 decimals
	usdAmount := req.Amount / usdToBrlRate
	expectedAmount := strconv.FormatFloat(usdAmount, 'f', 6, 64)

	qrCode, err := generateQRCode(qrPayload{
		Address:  s.cfg.WalletAddress,
		Amount:   expectedAmount,
		Currency: currency,
		Network:  network,
		Memo:     fmt.Sprintf("DriveTube-%s", txId),
	})
	if err != nil {
		return nil, fmt.Errorf("generate qr code: %w", err)
	}

	intent := &PaymentIntent{
		WalletAddress:  s.cfg.WalletAddress,
		QRCode:         qrCode,
		TxId:           txId,
		ExpiresAt:      s.now().Add(time.Duration(expirationMinutes) * time.Minute),
		Amount:         req.Amount,
		Currency:       currency,
		Network:        network,
		ExpectedAmount: expectedAmount,
	}

	// The tanos session adds an external verification layer but is optional:
	// when it cannot be established the intent still goes out, flagged as
	// simulated so callers can tell the difference.
	sessionId, err := s.createTanosSession(ctx, tanosSessionRequest{
		Type:        "crypto_payment",
		Amount:      expectedAmount,
		Currency:    currency,
		Network:     network,
		Description: req.Description,
		TxId:        txId,
	})
	if err != nil {
		s.log.Warn("crypto", "tanos unavailable, issuing simulated intent", map[string]interface{}{
			"tx_id": txId,
			"error": err.Error(),
		})
		intent.Simulated = true
	} else {
		intent.TanosSession = sessionId
	}

	return intent, nil
}

func (s *service) CheckStatus(ctx context.Context, txId, network string) (Status, error) {
	if network == "" {
		network = s.cfg.Network
	}

	confirmed, err := s.checkExplorerTransaction(ctx, txId, network)
	if err != nil {
		// Explorer failures degrade to pending rather than erroring out.
		s.log.Warn("crypto", "explorer check failed", map[string]interface{}{
			"tx_id": txId,
			"error": err.Error(),
		})
		confirmed = false
	}
	if confirmed {
		return StatusCompleted, nil
	}

	createdAt := s.extractTimestampFromTxId(txId)
	if s.now().Sub(createdAt) > 24*time.Hour {
		return StatusExpired, nil
	}

	return StatusPending, nil
}

// generateTxId builds "DT" + base36 millis + 8 random bytes hex, uppercased.
// The embedded timestamp is what CheckStatus uses to age out payments.
func (s *service) generateTxId() (string, error) {
	timestamp := strconv.FormatInt(s.now().UnixMilli(), 36)
	random := make([]byte, 8)
	if _, err := rand.Read(random); err != nil {
		return "", err
	}
	return strings.ToUpper(fmt.Sprintf("DT%s%s", timestamp, hex.EncodeToString(random))), nil
}

// extractTimestampFromTxId reads the base36 millis back out of the id. A
// malformed id falls back to now, which keeps the payment pending.
func (s *service) extractTimestampFromTxId(txId string) time.Time {
	if len(txId) < 10 {
		return s.now()
	}
	millis, err := strconv.ParseInt(strings.ToLower(txId[2:10]), 36, 64)
	if err != nil {
		return s.now()
	}
	return time.UnixMilli(millis)
}

type qrPayload struct {
	Address  string `json:"address"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Network  string `json:"network"`
	Memo     string `json:"memo"`
}

func generateQRCode(payload qrPayload) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}

type tanosSessionRequest struct {
	Type        string `json:"type"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
	Network     string `json:"network"`
	Description string `json:"description"`
	TxId        string `json:"txId"`
}

type tanosSessionResponse struct {
	Id string `json:"id"`
}

func (s *service) createTanosSession(ctx context.Context, req tanosSessionRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.TanosAPIURL+"/v1/sessions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("tanos session returned status %d", resp.StatusCode)
	}

	var session tanosSessionResponse
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return "", err
	}
	return session.Id, nil
}

type explorerResponse struct {
	Result []struct {
		Input string `json:"input"`
	} `json:"result"`
}

// checkExplorerTransaction scans recent wallet transactions for the txId memo.
// Without an API key there is nothing to check and the answer is always no.
func (s *service) checkExplorerTransaction(ctx context.Context, txId, network string) (bool, error) {
	if s.cfg.ExplorerAPIKey == "" {
		return false, nil
	}

	var apiUrl string
	switch network {
	case "BEP20":
		apiUrl = fmt.Sprintf("%s?module=account&action=txlist&address=%s&apikey=%s",
			s.cfg.ExplorerAPIURL, s.cfg.WalletAddress, s.cfg.ExplorerAPIKey)
	case "ERC20":
		apiUrl = fmt.Sprintf("https://api.etherscan.io/api?module=account&action=txlist&address=%s&apikey=%s",
			s.cfg.WalletAddress, s.cfg.ExplorerAPIKey)
	default:
		return false, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiUrl, nil)
	if err != nil {
		return false, err
	}

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	var result explorerResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, err
	}

	for _, tx := range result.Result {
		if strings.Contains(tx.Input, txId) {
			return true, nil
		}
	}
	return false, nil
}

// ValidateWalletAddress does a basic shape check for EVM-style addresses.
func ValidateWalletAddress(address, network string) bool {
	if network != "BEP20" && network != "ERC20" {
		return false
	}
	if len(address) != 42 || !strings.HasPrefix(address, "0x") {
		return false
	}
	for _, c := range address[2:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// ConvertBrlToUsdt applies the fixed conversion rate.
func ConvertBrlToUsdt(brlAmount float64) float64 {
	return brlAmount / usdToBrlRate
}

// ConvertUsdtToBrl applies the fixed conversion rate in reverse.
func ConvertUsdtToBrl(usdtAmount float64) float64 {
	return usdtAmount * usdToBrlRate
}
