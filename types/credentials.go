package types

import "encoding/json"

// Credentials holds the static bearer token used on every call.
// String and MarshalJSON mask the token so it never reaches logs.
type Credentials struct {
	Token string
}

// NewCredentials keeps token exactly as given.
func NewCredentials(token string) Credentials {
	return Credentials{Token: token}
}

// AuthorizationHeader returns the value of the Authorization header.
func (c Credentials) AuthorizationHeader() string {
	return "Bearer " + c.Token
}

// Empty reports whether no token is set.
func (c Credentials) Empty() bool {
	return c.Token == ""
}

func (c Credentials) String() string {
	if c.Token == "" {
		return "Credentials{}"
	}
	return "Credentials{Token:***}"
}

func (c Credentials) MarshalJSON() ([]byte, error) {
	type masked struct {
		Token string `json:"token,omitempty"`
	}
	out := masked{}
	if c.Token != "" {
		out.Token = "***"
	}
	return json.Marshal(out)
}
