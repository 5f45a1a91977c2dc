package schemaio

import (
	"fmt"

	"github.com/holiman/uint256"

	ssz "github.com/gfx-labs/sszview"
	"github.com/gfx-labs/sszview/schema"
	"github.com/gfx-labs/sszview/view"
)

// UnionObj is the {selector, value} pair spec.md §6.2 specifies as a
// union's object representation. Value is nil for the None variant
// (selector 0).
type UnionObj struct {
	Selector uint64
	Value    interface{}
}

// ToObj renders v as a language-neutral representation: bool for
// Bool, an integer for Uint8..64, *uint256.Int for Uint128/256, []byte
// for byte-vector/byte-list, []bool for bitfields, []interface{} for
// vector/list, map[string]interface{} for container, UnionObj for
// union.
func ToObj(v view.View) (interface{}, error) {
	switch t := v.(type) {
	case *view.BasicView:
		return basicToObj(t)

	case *view.ContainerView:
		ct := t.Type().(*schema.Container)
		out := make(map[string]interface{}, ct.NumFields())
		for i, f := range ct.Fields() {
			fv, err := t.FieldAt(i)
			if err != nil {
				return nil, err
			}
			obj, err := ToObj(fv)
			if err != nil {
				return nil, err
			}
			out[f.Name] = obj
		}
		return out, nil

	case *view.VectorView:
		out := make([]interface{}, t.Len())
		for i := range out {
			ev, err := t.Get(i)
			if err != nil {
				return nil, err
			}
			obj, err := ToObj(ev)
			if err != nil {
				return nil, err
			}
			out[i] = obj
		}
		return out, nil

	case *view.ListView:
		n, err := t.Len()
		if err != nil {
			return nil, err
		}
		out := make([]interface{}, n)
		for i := range out {
			ev, err := t.Get(i)
			if err != nil {
				return nil, err
			}
			obj, err := ToObj(ev)
			if err != nil {
				return nil, err
			}
			out[i] = obj
		}
		return out, nil

	case *view.BitVectorView:
		return t.Bits()

	case *view.BitListView:
		n, err := t.Len()
		if err != nil {
			return nil, err
		}
		out := make([]bool, n)
		for i := range out {
			b, err := t.Bit(i)
			if err != nil {
				return nil, err
			}
			out[i] = b
		}
		return out, nil

	case *view.ByteVectorView:
		return append([]byte(nil), t.Bytes()...), nil

	case *view.ByteListView:
		b, err := t.Bytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), b...), nil

	case *view.UnionView:
		sel, err := t.Selector()
		if err != nil {
			return nil, err
		}
		if sel == 0 {
			return UnionObj{Selector: 0}, nil
		}
		val, err := t.Value()
		if err != nil {
			return nil, err
		}
		obj, err := ToObj(val)
		if err != nil {
			return nil, err
		}
		return UnionObj{Selector: sel, Value: obj}, nil

	default:
		return nil, ssz.NewTypeMismatchError("a type schemaio knows how to render", v.Type().String())
	}
}

func basicToObj(t *view.BasicView) (interface{}, error) {
	basic := t.Type().(*schema.Basic)
	switch basic.Kind() {
	case ssz.KindBool:
		return t.Bool()
	case ssz.KindUint128, ssz.KindUint256:
		return t.Uint256()
	default:
		return t.Uint()
	}
}

// FromObj builds a fresh value of typ from raw, the inverse of ToObj.
func FromObj(typ schema.Descriptor, raw interface{}) (view.View, error) {
	v := view.NewRoot(typ)
	if err := populate(v, raw); err != nil {
		return nil, err
	}
	return v, nil
}

func populate(v view.View, raw interface{}) error {
	switch t := v.(type) {
	case *view.BasicView:
		return populateBasic(t, raw)

	case *view.ContainerView:
		m, ok := raw.(map[string]interface{})
		if !ok {
			return ssz.NewTypeMismatchError("map[string]interface{}", fmt.Sprintf("%T", raw))
		}
		ct := t.Type().(*schema.Container)
		for key := range m {
			if _, ok := ct.FieldIndex(key); !ok {
				return ssz.NewUnknownFieldError(key)
			}
		}
		for i, f := range ct.Fields() {
			val, present := m[f.Name]
			if !present {
				continue
			}
			fv, err := t.FieldAt(i)
			if err != nil {
				return err
			}
			if err := populate(fv, val); err != nil {
				return err
			}
		}
		return nil

	case *view.VectorView:
		elems, ok := raw.([]interface{})
		if !ok {
			return ssz.NewTypeMismatchError("[]interface{}", fmt.Sprintf("%T", raw))
		}
		if len(elems) != t.Len() {
			return ssz.NewLengthMismatchError(t.Len(), len(elems))
		}
		for i, val := range elems {
			ev, err := t.Get(i)
			if err != nil {
				return err
			}
			if err := populate(ev, val); err != nil {
				return err
			}
		}
		return nil

	case *view.ListView:
		elems, ok := raw.([]interface{})
		if !ok {
			return ssz.NewTypeMismatchError("[]interface{}", fmt.Sprintf("%T", raw))
		}
		for _, val := range elems {
			ev, err := t.Append()
			if err != nil {
				return err
			}
			if err := populate(ev, val); err != nil {
				return err
			}
		}
		return nil

	case *view.BitVectorView:
		bits, ok := raw.([]bool)
		if !ok {
			return ssz.NewTypeMismatchError("[]bool", fmt.Sprintf("%T", raw))
		}
		if len(bits) != t.Len() {
			return ssz.NewLengthMismatchError(t.Len(), len(bits))
		}
		for i, b := range bits {
			if err := t.SetBit(i, b); err != nil {
				return err
			}
		}
		return nil

	case *view.BitListView:
		bits, ok := raw.([]bool)
		if !ok {
			return ssz.NewTypeMismatchError("[]bool", fmt.Sprintf("%T", raw))
		}
		for _, b := range bits {
			if err := t.Append(b); err != nil {
				return err
			}
		}
		return nil

	case *view.ByteVectorView:
		b, ok := raw.([]byte)
		if !ok {
			return ssz.NewTypeMismatchError("[]byte", fmt.Sprintf("%T", raw))
		}
		return t.SetBytes(b)

	case *view.ByteListView:
		b, ok := raw.([]byte)
		if !ok {
			return ssz.NewTypeMismatchError("[]byte", fmt.Sprintf("%T", raw))
		}
		return t.SetBytes(b)

	case *view.UnionView:
		u, ok := raw.(UnionObj)
		if !ok {
			return ssz.NewTypeMismatchError("schemaio.UnionObj", fmt.Sprintf("%T", raw))
		}
		val, err := t.SetVariant(u.Selector)
		if err != nil {
			return err
		}
		if u.Selector == 0 {
			return nil
		}
		return populate(val, u.Value)

	default:
		return ssz.NewTypeMismatchError("a type schemaio knows how to populate", v.Type().String())
	}
}

func populateBasic(t *view.BasicView, raw interface{}) error {
	basic := t.Type().(*schema.Basic)
	switch basic.Kind() {
	case ssz.KindBool:
		b, ok := raw.(bool)
		if !ok {
			return ssz.NewTypeMismatchError("bool", fmt.Sprintf("%T", raw))
		}
		return t.SetBool(b)

	case ssz.KindUint128, ssz.KindUint256:
		u, ok := raw.(*uint256.Int)
		if !ok {
			return ssz.NewTypeMismatchError("*uint256.Int", fmt.Sprintf("%T", raw))
		}
		return t.SetUint256(u)

	default:
		u, ok := toUint64(raw)
		if !ok {
			return ssz.NewTypeMismatchError("an unsigned integer", fmt.Sprintf("%T", raw))
		}
		return t.SetUint(u)
	}
}

// toUint64 widens the handful of Go integer kinds a caller is likely
// to hand FromObj (e.g. a plain int literal) into the uint64 every
// non-bool, non-uint128/256 BasicView setter expects.
func toUint64(raw interface{}) (uint64, bool) {
	switch n := raw.(type) {
	case uint64:
		return n, true
	case uint32:
		return uint64(n), true
	case uint16:
		return uint64(n), true
	case uint8:
		return uint64(n), true
	case int:
		return uint64(n), true
	case int64:
		return uint64(n), true
	default:
		return 0, false
	}
}
