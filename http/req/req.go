package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"reflect"

	"github.com/gorilla/schema"
	"github.com/xy-planning-network/basecamp"
)

// A Parser decodes request payloads into structs and validates them.
type Parser struct {
	dec *schema.Decoder
	validator
}

// NewParser constructs a Parser ignoring query params no field asks for.
func NewParser() *Parser {
	return &Parser{
		dec:       newQueryParamDecoder(),
		validator: newValidator(),
	}
}

// ParseBody decodes into a pointer to a struct the JSON data in body.
// If successful, ParseBody runs validation against the contents,
// returning ValidationErrors if the data fails validation rules.
//
// ParseBody reads the entire body; it can't be read from again.
func (p *Parser) ParseBody(body io.Reader, structPtr any) error {
	var ourFault *json.InvalidUnmarshalError
	err := json.NewDecoder(body).Decode(structPtr)
	if errors.As(err, &ourFault) {
		return fmt.Errorf("%w: ParseBody called with non-pointer: %s", basecamp.ErrBadAny, err)
	}

	if err != nil {
		return fmt.Errorf("%w: failed decoding request body: %s", basecamp.ErrBadFormat, err)
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}

// ParseQueryParams decodes into a pointer to a struct the query param data in params.
// If successful, ParseQueryParams runs validation against the contents,
// returning ValidationErrors if the data fails validation rules.
func (p *Parser) ParseQueryParams(params url.Values, structPtr any) error {
	rv := reflect.ValueOf(structPtr)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: ParseQueryParams called with %T, not a pointer to a struct", basecamp.ErrBadAny, structPtr)
	}

	if err := p.dec.Decode(structPtr, params); err != nil {
		return fmt.Errorf("failed decoding request query params: %w", translateDecoderError(err))
	}

	if err := p.validate(structPtr); err != nil {
		return fmt.Errorf("%T failed validation: %w", structPtr, err)
	}

	return nil
}
