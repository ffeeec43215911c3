package validator

import "maps"

// Fixed policy values. They are not read from the environment.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
	// MinPasswordScore is the default minimum strength score accepted by IsPasswordStrong.
	MinPasswordScore = 3
	OTPLength        = 6
	// MaxFileSize is 10 MiB.
	MaxFileSize int64 = 10 << 20
)

// MIME types accepted for uploads.
const (
	MIMETypeJPEG = "image/jpeg"
	MIMETypePNG  = "image/png"
	MIMETypeGIF  = "image/gif"
	MIMETypePDF  = "application/pdf"
	MIMETypeText = "text/plain"
	MIMETypeDOC  = "application/msword"
	MIMETypeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// AllowedFileTypes returns the upload allow-list. The slice is a fresh copy.
func AllowedFileTypes() []string {
	return []string{
		MIMETypeJPEG,
		MIMETypePNG,
		MIMETypeGIF,
		MIMETypePDF,
		MIMETypeText,
		MIMETypeDOC,
		MIMETypeDOCX,
	}
}

var fileTypeNames = map[string]string{
	MIMETypeJPEG: "JPEG",
	MIMETypePNG:  "PNG",
	MIMETypeGIF:  "GIF",
	MIMETypePDF:  "PDF",
	MIMETypeText: "TXT",
	MIMETypeDOC:  "DOC",
	MIMETypeDOCX: "DOCX",
}

// Form field keys with a maximum length.
const (
	FieldName         = "name"
	FieldEmail        = "email"
	FieldPhone        = "phone"
	FieldPassword     = "password"
	FieldDescription  = "description"
	FieldURL          = "url"
	FieldOrganization = "organization"
	FieldOTP          = "otp"
)

var maxFieldLengths = map[string]int{
	FieldName:         100,
	FieldEmail:        254,
	FieldPhone:        20,
	FieldPassword:     MaxPasswordLength,
	FieldDescription:  500,
	FieldURL:          2048,
	FieldOrganization: 100,
	FieldOTP:          OTPLength,
}

var fieldLabels = map[string]string{
	FieldName:         "Name",
	FieldEmail:        "Email",
	FieldPhone:        "Phone number",
	FieldPassword:     "Password",
	FieldDescription:  "Description",
	FieldURL:          "URL",
	FieldOrganization: "Organization name",
	FieldOTP:          "Verification code",
}

// MaxFieldLength reports the maximum length in characters for a known field key.
func MaxFieldLength(field string) (int, bool) {
	n, ok := maxFieldLengths[field]
	return n, ok
}

// MaxFieldLengths returns a copy of the per-field maximum lengths.
func MaxFieldLengths() map[string]int {
	return maps.Clone(maxFieldLengths)
}

// FieldLabel returns the display label for a field key, or the key itself.
func FieldLabel(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}
