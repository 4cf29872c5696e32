package transport

import "encoding/base64"

// Credentials identify the caller to both products. They are read-only once
// a Client has been built from them.
type Credentials struct {
	OriginatorID       string
	OriginatorPassword string
}

// BasicAuth returns the value of the Authorization header.
func (c Credentials) BasicAuth() string {
	raw := c.OriginatorID + ":" + c.OriginatorPassword
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(raw))
}

func (c Credentials) IsZero() bool {
	return c.OriginatorID == "" || c.OriginatorPassword == ""
}
