package builder

import (
	"github.com/specialistvlad/fundingdsl/internal/config"
	"github.com/specialistvlad/fundingdsl/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// The helpers below read one attribute and report whether it was present and
// usable. A value that cannot be converted counts as absent.

func lookup(attrs config.Attributes, name string, want cty.Type) (cty.Value, bool) {
	v, ok := attrs.Get(name)
	if !ok || v.IsNull() || !v.IsWhollyKnown() {
		return cty.NilVal, false
	}
	v, err := convert.Convert(v, want)
	if err != nil {
		return cty.NilVal, false
	}
	return v, true
}

func stringAttr(attrs config.Attributes, name string) (string, bool) {
	v, ok := lookup(attrs, name, cty.String)
	if !ok {
		return "", false
	}
	return v.AsString(), true
}

func numberAttr(attrs config.Attributes, name string) (float64, bool) {
	v, ok := lookup(attrs, name, cty.Number)
	if !ok {
		return 0, false
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err != nil {
		return 0, false
	}
	return f, true
}

func boolAttr(attrs config.Attributes, name string) (bool, bool) {
	v, ok := lookup(attrs, name, cty.Bool)
	if !ok {
		return false, false
	}
	return v.True(), true
}

func stringListAttr(attrs config.Attributes, name string) ([]string, bool) {
	v, ok := lookup(attrs, name, cty.List(cty.String))
	if !ok {
		return nil, false
	}
	out := []string{}
	if err := gocty.FromCtyValue(v, &out); err != nil {
		return nil, false
	}
	if out == nil {
		out = []string{}
	}
	return out, true
}

func amountAttr(attrs config.Attributes, name string) (float64, string, bool) {
	v, ok := lookup(attrs, name, schema.AmountType)
	if !ok {
		return 0, "", false
	}
	var f float64
	if err := gocty.FromCtyValue(v.Index(cty.NumberIntVal(0)), &f); err != nil {
		return 0, "", false
	}
	return f, v.Index(cty.NumberIntVal(1)).AsString(), true
}
