package menu

type FieldType string

const (
	FieldString FieldType = "string"
	FieldMenu   FieldType = "form-menu"
)

type FormMeta struct {
	ConfirmationNeeded       bool `json:"confirmation_needed"`
	CompletionStatusInHeader bool `json:"completion_status_in_header"`
	CompletionStatusShow     bool `json:"completion_status_show"`
}

type Choice struct {
	Type        ItemType `json:"type"`
	Value       string   `json:"value"`
	Description string   `json:"description"`
}

type FormItem struct {
	Type        FieldType `json:"type"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Header      string    `json:"header,omitempty"`
	Footer      string    `json:"footer,omitempty"`
	Body        []Choice  `json:"body,omitempty"`
}

// TextField asks for free text.
func TextField(name, description, header, footer string) FormItem {
	return FormItem{Type: FieldString, Name: name, Description: description, Header: header, Footer: footer}
}

// ChoiceField asks the user to pick one of choices.
func ChoiceField(name string, choices ...Choice) FormItem {
	return FormItem{Type: FieldMenu, Name: name, Body: choices}
}

func NewChoice(description, value string) Choice {
	return Choice{Type: ItemOption, Value: value, Description: description}
}

type Form struct {
	Type   string     `json:"type"`
	Body   []FormItem `json:"body"`
	Method string     `json:"method"`
	Path   string     `json:"path"`
	Meta   FormMeta   `json:"meta"`
}

// NewForm builds a form submitted to path with method. Confirmation and
// completion status are always off.
func NewForm(method, path string, fields ...FormItem) *Form {
	return &Form{Type: "form", Body: fields, Method: method, Path: path}
}

func (*Form) ContentType() string { return "form" }
