package handler

// credentialsForm is the payload of both the login and registration forms.
// Bound from form-encoded bodies on the rendered pages and from JSON for
// programmatic clients.
type credentialsForm struct {
	Username string `form:"username" json:"username" validate:"required,max=64"`
	Password string `form:"password" json:"password" validate:"required,max=128"`
}
