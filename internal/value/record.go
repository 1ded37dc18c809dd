package value

// Record is a parallel-array struct value: Fields is sorted ascending
// and unique, and len(Fields) == len(Values).
type Record struct {
	Name   string
	Fields []string
	Values []Value
}

func (Record) Kind() Kind { return KindRecord }
func (r Record) String() string {
	s := "(%{} " + r.Name
	for i, f := range r.Fields {
		s += " (" + f + " " + r.Values[i].String() + ")"
	}
	return s + ")"
}

// Get looks up a field by name.
func (r Record) Get(field string) (Value, bool) {
	for i, f := range r.Fields {
		if f == field {
			return r.Values[i], true
		}
	}
	return nil, false
}

// With returns a copy of r with field set to v. field must already exist
// (records have a fixed field set once constructed).
func (r Record) With(field string, v Value) (Record, bool) {
	for i, f := range r.Fields {
		if f == field {
			values := append([]Value{}, r.Values...)
			values[i] = v
			return Record{Name: r.Name, Fields: r.Fields, Values: values}, true
		}
	}
	return r, false
}

// Tuple is a 2-tuple; A is often a class record used for method dispatch.
type Tuple struct {
	A, B Value
}

func (Tuple) Kind() Kind { return KindTuple }
func (t Tuple) String() string {
	return "(:: " + t.A.String() + " " + t.B.String() + ")"
}
