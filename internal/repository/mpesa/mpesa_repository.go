package mpesa

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rhoda-NM/OneStopShop-Project/domain"
)

type MpesaConfig struct {
	ConsumerKey       string
	ConsumerSecret    string
	BusinessShortCode string
	Passkey           string
	BaseUrl           string
	CallbackUrl       string
}

// MpesaRepository is the Safaricom Daraja client used for checkout: OAuth
// client-credentials token, then Lipa Na M-PESA STK push.
type MpesaRepository struct {
	mpesaConfig MpesaConfig
}

func NewMpesaRepository(cfg MpesaConfig) *MpesaRepository {
	return &MpesaRepository{
		cfg,
	}
}

func (r MpesaRepository) AccessToken() (string, error) {
	url := r.mpesaConfig.BaseUrl + "/oauth/v1/generate?grant_type=client_credentials"

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(r.mpesaConfig.ConsumerKey, r.mpesaConfig.ConsumerSecret)

	res, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	var tokenResponse domain.MpesaTokenResponse
	if err := json.Unmarshal(body, &tokenResponse); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if tokenResponse.AccessToken == "" {
		return "", fmt.Errorf("mpesa token endpoint returned %v: %s", res.StatusCode, string(body))
	}

	return tokenResponse.AccessToken, nil
}

// password is base64(shortcode + passkey + timestamp), the Lipa Na M-PESA
// online password scheme.
func (r MpesaRepository) password(timestamp string) string {
	data := r.mpesaConfig.BusinessShortCode + r.mpesaConfig.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(data))
}

func (r MpesaRepository) STKPush(phone, amount, accountReference string) (domain.STKPushResponse, error) {
	accessToken, err := r.AccessToken()
	if err != nil {
		return domain.STKPushResponse{}, fmt.Errorf("failed to get mpesa token: %w", err)
	}

	timestamp := time.Now().Format("20060102150405")

	payload := fmt.Sprintf(`{
		"BusinessShortCode": "%s",
		"Password": "%s",
		"Timestamp": "%s",
		"TransactionType": "CustomerPayBillOnline",
		"Amount": "%s",
		"PartyA": "%s",
		"PartyB": "%s",
		"PhoneNumber": "%s",
		"CallBackURL": "%s",
		"AccountReference": "%s",
		"TransactionDesc": "Payment for order"
	}`, r.mpesaConfig.BusinessShortCode, r.password(timestamp), timestamp,
		amount, phone, r.mpesaConfig.BusinessShortCode, phone,
		r.mpesaConfig.CallbackUrl, accountReference)

	url := r.mpesaConfig.BaseUrl + "/mpesa/stkpush/v1/processrequest"

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(payload))
	if err != nil {
		return domain.STKPushResponse{}, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+accessToken)

	res, err := client.Do(req)
	if err != nil {
		return domain.STKPushResponse{}, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.STKPushResponse{}, err
	}

	if res.StatusCode > 299 {
		return domain.STKPushResponse{}, fmt.Errorf("stk push returned %v: %s", res.StatusCode, string(body))
	}

	var stkResponse domain.STKPushResponse
	if err := json.Unmarshal(body, &stkResponse); err != nil {
		return domain.STKPushResponse{}, fmt.Errorf("failed to decode stk push response: %w", err)
	}

	return stkResponse, nil
}
