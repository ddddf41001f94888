// Package decoder contains the default [domain.Decoder] implementation. It
// rebuilds filter specifications from generic maps, JSON or YAML documents.
package decoder

import (
	"context"
	"encoding/json"
	"io"

	"github.com/dolmen-go/contextio"
	"github.com/goccy/go-reflect"
	"github.com/mitchellh/mapstructure"
	"github.com/vinicius-lino-figueiredo/queryfilter/adapter/idgenerator"
	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
	"gopkg.in/yaml.v3"
)

// DefaultTagName is the struct tag read to match document keys with
// specification fields.
const DefaultTagName = "json"

// Decoder implements domain.Decoder.
type Decoder struct {
	tagName     string
	weak        bool
	idGenerator domain.IDGenerator
}

// NewDecoder returns a new implementation of domain.Decoder.
func NewDecoder(options ...Option) domain.Decoder {
	d := &Decoder{
		tagName:     DefaultTagName,
		weak:        true,
		idGenerator: idgenerator.NewIDGenerator(),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

// Decode implements domain.Decoder.
//
// Fields whose pointer implements [domain.Restorer] are read as lists of
// [domain.Record], and fields whose pointer implements [domain.GroupRestorer]
// as lists of [domain.GroupRecord]. Records missing an identity receive a
// generated one.
func (d *Decoder) Decode(source any, target any) error {
	if target == nil {
		return domain.ErrTargetNil
	}

	value := reflect.ValueNoEscapeOf(target)
	if value.Kind() != reflect.Ptr || value.IsNil() {
		return domain.ErrNonPointer
	}

	dec, err := d.newDecoder(target, d.tagName, d.restoreHook)
	if err != nil {
		return err
	}
	if err := dec.Decode(source); err != nil {
		return domain.ErrDecode{Source: source, Target: target, Cause: err}
	}
	return nil
}

// ReadJSON implements domain.Decoder.
func (d *Decoder) ReadJSON(ctx context.Context, r io.Reader, target any) error {
	b, err := io.ReadAll(contextio.NewReader(ctx, r))
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := json.Unmarshal(b, &doc); err != nil {
		return domain.ErrDecode{Source: b, Target: target, Cause: err}
	}
	return d.Decode(doc, target)
}

// ReadYAML implements domain.Decoder.
func (d *Decoder) ReadYAML(ctx context.Context, r io.Reader, target any) error {
	b, err := io.ReadAll(contextio.NewReader(ctx, r))
	if err != nil {
		return err
	}
	var doc map[string]any
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return domain.ErrDecode{Source: b, Target: target, Cause: err}
	}
	return d.Decode(doc, target)
}

func (d *Decoder) newDecoder(target any, tag string, hook mapstructure.DecodeHookFuncValue) (*mapstructure.Decoder, error) {
	conf := &mapstructure.DecoderConfig{
		TagName:          tag,
		WeaklyTypedInput: d.weak,
		Result:           target,
	}
	if hook != nil {
		conf.DecodeHook = hook
	}
	return mapstructure.NewDecoder(conf)
}

// convert decodes records and their values. Records are always read with the
// default tag.
func (d *Decoder) convert(source any, target any) error {
	dec, err := d.newDecoder(target, DefaultTagName, nil)
	if err != nil {
		return err
	}
	return dec.Decode(source)
}
