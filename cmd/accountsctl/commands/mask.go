package commands

import (
	"fmt"

	"github.com/myaccounts/portalkit/pkg/safeinput"
)

// Masking variants.
const (
	VariantStandard = "standard"
	VariantMinimal  = "minimal"
	VariantCountry  = "country"
	VariantPartial  = "partial"
)

type maskOutput struct {
	Kind    string `json:"kind"`
	Variant string `json:"variant"`
	Masked  string `json:"masked"`
}

// RunMask prints value masked for display. Email supports the standard and
// minimal variants; phone supports standard, country and partial.
func RunMask(kit *safeinput.Kit, kind, variant, value string, format Format, io IOTuple) error {
	value, err := readValue(value, io.Reader)
	if err != nil {
		return err
	}
	if variant == "" {
		variant = VariantStandard
	}

	var masked string
	switch {
	case kind == KindEmail && variant == VariantStandard:
		masked = kit.MaskEmail(value)
	case kind == KindEmail && variant == VariantMinimal:
		masked = kit.MaskEmailMinimal(value)
	case kind == KindPhone && variant == VariantStandard:
		masked = kit.MaskPhone(value)
	case kind == KindPhone && variant == VariantCountry:
		masked = kit.MaskPhoneWithCountryCode(value)
	case kind == KindPhone && variant == VariantPartial:
		masked = kit.MaskPhonePartial(value)
	case kind == KindEmail, kind == KindPhone:
		return fmt.Errorf("invalid variant %q for %s", variant, kind)
	default:
		return fmt.Errorf("invalid kind: %s (valid options: email, phone)", kind)
	}

	return output(io.Writer, format, maskOutput{Kind: kind, Variant: variant, Masked: masked}, masked)
}
