package linkhdr

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

const paramTag = "param"

var validate = validator.New()

// Attributes are the target attributes defined by RFC 8288.
type Attributes struct {
	Rel       string `param:"rel"`
	Rev       string `param:"rev"`
	Anchor    string `param:"anchor"`
	Title     string `param:"title"`
	TitleStar string `param:"title*"`
	Type      string `param:"type" validate:"omitempty,contains=/"`
	Hreflang  string `param:"hreflang" validate:"omitempty,bcp47_language_tag"`
	Media     string `param:"media"`

	// Extension attributes
	Ext map[string]string `param:",remain"`
}

// Attributes decodes and validates the link's attributes.
func (l *Link) Attributes() (*Attributes, error) {
	a := &Attributes{}
	if err := l.decodeParams(a, false); err != nil {
		return nil, err
	}
	if a.Ext == nil {
		a.Ext = map[string]string{}
	}
	return a, nil
}

// DecodeParams decodes the link's attributes into v, which must be a pointer
// to a struct with `param` tags. Attributes without a matching field are an
// error. The result is validated using `validate` tags.
func (l *Link) DecodeParams(v interface{}) error {
	return l.decodeParams(v, true)
}

func (l *Link) decodeParams(v interface{}, errorUnused bool) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		ErrorUnused:      errorUnused,
		TagName:          paramTag,
		WeaklyTypedInput: true,
		// attribute names are case sensitive
		MatchName: func(mapKey, fieldName string) bool { return mapKey == fieldName },
	})
	if err != nil {
		return fmt.Errorf("error initializing param decoder: %w", err)
	}
	if err = d.Decode(l.Params); err != nil {
		return fmt.Errorf("error decoding params of %s: %w", l.RawURI, err)
	}
	if err = validate.Struct(v); err != nil {
		return fmt.Errorf("invalid params for %s: %w", l.RawURI, err)
	}
	return nil
}
