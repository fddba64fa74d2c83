// Package card wraps the hosted-checkout card rail. Crypto is the primary
// payment method; this exists for subscribers who cannot pay in USDT.
package card

import (
	"fmt"

	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
)

type Config struct {
	ServerKey string
	IsProd    bool
	FinishURL string
}

type PaymentRequest struct {
	OrderId       string
	Amount        float64
	CustomerName  string
	CustomerEmail string
	ItemId        string
	ItemName      string
}

type PaymentIntent struct {
	Token       string
	RedirectURL string
}

type IService interface {
	CreateTransaction(req PaymentRequest) (*PaymentIntent, error)
}

type service struct {
	client snap.Client
}

func NewService(cfg Config) IService {
	env := midtrans.Sandbox
	if cfg.IsProd {
		env = midtrans.Production
	}

	var client snap.Client
	client.New(cfg.ServerKey, env)

	return &service{client: client}
}

func (s *service) CreateTransaction(req PaymentRequest) (*PaymentIntent, error) {
	snapReq := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  req.OrderId,
			GrossAmt: int64(req.Amount),
		},
		CreditCard: &snap.CreditCardDetails{
			Secure: true,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: req.CustomerName,
			Email: req.CustomerEmail,
		},
		Items: &[]midtrans.ItemDetails{
			{
				ID:    req.ItemId,
				Price: int64(req.Amount),
				Qty:   1,
				Name:  req.ItemName,
			},
		},
		EnabledPayments: snap.AllSnapPaymentType,
	}

	snapResp, midErr := s.client.CreateTransaction(snapReq)
	if midErr != nil {
		return nil, fmt.Errorf("midtrans error: %v", midErr.GetMessage())
	}

	return &PaymentIntent{
		Token:       snapResp.Token,
		RedirectURL: snapResp.RedirectURL,
	}, nil
}
