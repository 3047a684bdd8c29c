package domain

// Daraja API shapes.

type MpesaTokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

type STKPushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
}

type MpesaCallbackItem struct {
	Name  string      `json:"Name"`
	Value interface{} `json:"Value"`
}

type MpesaCallbackMetadata struct {
	Item []MpesaCallbackItem `json:"Item"`
}

type MpesaSTKCallback struct {
	MerchantRequestID string                `json:"MerchantRequestID"`
	CheckoutRequestID string                `json:"CheckoutRequestID"`
	ResultCode        int                   `json:"ResultCode"`
	ResultDesc        string                `json:"ResultDesc"`
	CallbackMetadata  MpesaCallbackMetadata `json:"CallbackMetadata"`
}

type MpesaCallbackEnvelope struct {
	Body struct {
		STKCallback MpesaSTKCallback `json:"stkCallback"`
	} `json:"Body"`
}
