package connect

import "github.com/payxpert/payxpert-go/redirect"

// RedirectStatus is the payment outcome carried by the customer redirect
// after the hosted payment page.
type RedirectStatus struct {
	MerchantToken string                `json:"merchantToken"`
	PaymentType   string                `json:"paymentType"`
	Operation     string                `json:"operation"`
	ErrorCode     string                `json:"errorCode"`
	ErrorMessage  string                `json:"errorMessage"`
	Status        string                `json:"status"`
	OrderID       string                `json:"orderId"`
	Currency      string                `json:"currency"`
	Amount        int64                 `json:"amount"`
	CustomData    string                `json:"ctrlCustomData"`
	Transactions  []RedirectTransaction `json:"transactions"`
}

type RedirectTransaction struct {
	PaymentType     string          `json:"paymentType"`
	Operation       string          `json:"operation"`
	PaymentMeanInfo map[string]any  `json:"paymentMeanInfo"`
	Shopper         RedirectShopper `json:"shopper"`
}

type RedirectShopper struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Zipcode     string `json:"zipcode"`
	City        string `json:"city"`
	State       string `json:"state"`
	CountryCode string `json:"countryCode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	BirthDate   string `json:"birthDate"`
	IDNumber    string `json:"idNumber"`
}

// HandleRedirectStatus decrypts the data query parameter of the customer
// redirect with the merchant token of the payment. No request is made.
func (c *Client) HandleRedirectStatus(encryptedData, merchantToken string) (*RedirectStatus, error) {
	return redirect.DecryptInto[RedirectStatus](encryptedData, merchantToken)
}
