package decoder

import (
	"reflect"

	"github.com/vinicius-lino-figueiredo/queryfilter/domain"
)

var (
	restorerType      = reflect.TypeOf((*domain.Restorer)(nil)).Elem()
	groupRestorerType = reflect.TypeOf((*domain.GroupRestorer)(nil)).Elem()
)

// restoreHook intercepts lists decoded into restorable types. Other values are
// left for mapstructure to decode.
func (d *Decoder) restoreHook(from reflect.Value, to reflect.Value) (any, error) {
	if to.Kind() == reflect.Ptr || from.Type() == to.Type() || !isList(from) {
		return from.Interface(), nil
	}

	ptr := reflect.PointerTo(to.Type())
	switch {
	case ptr.Implements(restorerType):
		return d.restore(from.Interface(), to.Type())
	case ptr.Implements(groupRestorerType):
		return d.restoreGroups(from.Interface(), to.Type())
	default:
		return from.Interface(), nil
	}
}

func isList(v reflect.Value) bool {
	for v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	return v.Kind() == reflect.Slice || v.Kind() == reflect.Array
}

func (d *Decoder) restore(src any, typ reflect.Type) (any, error) {
	var recs []domain.Record
	if err := d.convert(src, &recs); err != nil {
		return nil, err
	}
	for n := range recs {
		if err := d.fillID(&recs[n].ID); err != nil {
			return nil, err
		}
	}

	res := reflect.New(typ)
	if err := res.Interface().(domain.Restorer).Restore(recs, d.convert); err != nil {
		return nil, err
	}
	return res.Elem().Interface(), nil
}

func (d *Decoder) restoreGroups(src any, typ reflect.Type) (any, error) {
	var recs []domain.GroupRecord
	if err := d.convert(src, &recs); err != nil {
		return nil, err
	}
	for n := range recs {
		if err := d.fillGroupIDs(&recs[n]); err != nil {
			return nil, err
		}
	}

	res := reflect.New(typ)
	if err := res.Interface().(domain.GroupRestorer).RestoreGroups(recs); err != nil {
		return nil, err
	}
	return res.Elem().Interface(), nil
}

func (d *Decoder) fillGroupIDs(rec *domain.GroupRecord) error {
	if err := d.fillID(&rec.ID); err != nil {
		return err
	}
	for _, item := range rec.Items {
		if item.Group != nil {
			if err := d.fillGroupIDs(item.Group); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *Decoder) fillID(id *string) error {
	if *id != "" {
		return nil
	}
	generated, err := d.idGenerator.GenerateID()
	if err != nil {
		return err
	}
	*id = generated
	return nil
}
