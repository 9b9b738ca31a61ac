package app

const (
	actionConnect = "connect"
	endpointPhone = "phone"
)

// Endpoint is a connect target. Only phone endpoints are produced here.
type Endpoint struct {
	Type   string `json:"type"`
	Number string `json:"number"`
}

// ConnectAction tells the platform to bridge the current call to Endpoint.
type ConnectAction struct {
	Action   string     `json:"action"`
	From     string     `json:"from,omitempty"`
	Endpoint []Endpoint `json:"endpoint"`
}

// NCCO is the ordered list of call control actions returned from the answer webhook.
type NCCO []any

// NewConnect returns an NCCO with a single connect action towards the phone
// number to. from is the caller id shown on the new leg and may be empty.
func NewConnect(to, from string) NCCO {
	return NCCO{ConnectAction{
		Action:   actionConnect,
		From:     from,
		Endpoint: []Endpoint{{Type: endpointPhone, Number: to}},
	}}
}
