package entity

const (
	ActionTypeAction      = "action"
	ActionTypeCompleted   = "completed"
	ActionTypeTransaction = "transaction"
	ActionTypePost        = "post"

	ParameterTypeText   = "text"
	ParameterTypeSelect = "select"
)

// ActionGetResponse - the discovery payload of the action protocol.
type ActionGetResponse struct {
	Type        string       `json:"type"`
	Icon        string       `json:"icon"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Label       string       `json:"label"`
	Disabled    bool         `json:"disabled,omitempty"`
	Links       *ActionLinks `json:"links,omitempty"`
}

type ActionLinks struct {
	Actions []LinkedAction `json:"actions"`
}

type LinkedAction struct {
	Type       string            `json:"type"`
	Href       string            `json:"href"`
	Label      string            `json:"label"`
	Parameters []ActionParameter `json:"parameters,omitempty"`
}

type ActionParameter struct {
	Type     string            `json:"type"`
	Name     string            `json:"name"`
	Label    string            `json:"label"`
	Required bool              `json:"required"`
	Options  []ParameterOption `json:"options,omitempty"`
}

type ParameterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type ActionPostRequest struct {
	Account string `json:"account"`
}

type ActionPostResponse struct {
	Type        string     `json:"type"`
	Transaction string     `json:"transaction"`
	Message     string     `json:"message,omitempty"`
	Links       *PostLinks `json:"links,omitempty"`
}

type PostLinks struct {
	Next NextActionLink `json:"next"`
}

type NextActionLink struct {
	Type string `json:"type"`
	Href string `json:"href"`
}

// ActionError - the error envelope of every action endpoint.
type ActionError struct {
	Message string `json:"message"`
}

type ActionRule struct {
	PathPattern string `json:"pathPattern"`
	APIPath     string `json:"apiPath"`
}

type ActionsJSON struct {
	Rules []ActionRule `json:"rules"`
}
