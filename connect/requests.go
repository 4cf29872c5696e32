package connect

// PaymentRequest prepares a hosted payment. APIVersion may be left empty.
// Bodies built as plain maps are accepted as well for fields not listed here.
type PaymentRequest struct {
	APIVersion      string   `json:"apiVersion,omitempty"`
	OrderID         string   `json:"orderID"`
	Currency        string   `json:"currency"`
	Amount          int64    `json:"amount"`
	PaymentMethod   string   `json:"paymentMethod,omitempty"`
	PaymentMode     string   `json:"paymentMode,omitempty"`
	CtrlRedirectURL string   `json:"ctrlRedirectURL,omitempty"`
	CtrlCallbackURL string   `json:"ctrlCallbackURL,omitempty"`
	CtrlCustomData  string   `json:"ctrlCustomData,omitempty"`
	Shopper         *Shopper `json:"shopper,omitempty"`
	Order           *Order   `json:"order,omitempty"`
}

type Shopper struct {
	Name            string `json:"name,omitempty"`
	Email           string `json:"email,omitempty"`
	Address1        string `json:"address1,omitempty"`
	Zipcode         string `json:"zipcode,omitempty"`
	City            string `json:"city,omitempty"`
	State           string `json:"state,omitempty"`
	CountryCode     string `json:"countryCode,omitempty"`
	HomePhonePrefix string `json:"homePhonePrefix,omitempty"`
	HomePhone       string `json:"homePhone,omitempty"`
}

type Order struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`
}

// DirectPaymentRequest starts a WeChat or AliPay payment without the hosted
// page. Mode is "native" or "pos" depending on the wallet.
type DirectPaymentRequest struct {
	APIVersion        string `json:"apiVersion,omitempty"`
	Mode              string `json:"mode"`
	BuyerIdentityCode string `json:"buyerIdentityCode,omitempty"`
}
