package value

import (
	"hash/fnv"
	"math"
)

// Hash implements the stable-hash rules: every variant mixes in
// a discriminator tag plus its content; numbers hash via their IEEE-754
// bit pattern so hashing is stable across
// platforms; sets hash order-independently (XOR of member hashes); maps
// hash over sorted key-value pairs.
func Hash(v Value) uint64 {
	h := fnv.New64a()
	hashInto(h, v)
	return h.Sum64()
}

type hasher interface {
	Write(p []byte) (int, error)
}

func hashInto(h hasher, v Value) {
	switch x := v.(type) {
	case Nil:
		h.Write([]byte("nil:"))
	case Bool:
		h.Write([]byte("bool:"))
		if x.Val {
			h.Write([]byte{1})
		} else {
			h.Write([]byte{0})
		}
	case Number:
		h.Write([]byte("number:"))
		var buf [8]byte
		bits := math.Float64bits(x.Val)
		for i := 0; i < 8; i++ {
			buf[i] = byte(bits >> (8 * i))
		}
		h.Write(buf[:])
	case Str:
		h.Write([]byte("string:"))
		h.Write([]byte(x.Val))
	case Tag:
		h.Write([]byte("tag:"))
		h.Write([]byte(x.Val))
	case Symbol:
		h.Write([]byte("symbol:"))
		h.Write([]byte(x.Sym))
	case List:
		h.Write([]byte("list:"))
		for _, it := range x.Items {
			hashInto(h, it)
		}
	case Set:
		h.Write([]byte("set:"))
		var acc uint64
		for _, it := range x.Items {
			acc ^= Hash(it)
		}
		writeUint64(h, acc)
	case Map:
		h.Write([]byte("map:"))
		keys, vals := x.sortedPairs()
		for i, k := range keys {
			hashInto(h, k)
			hashInto(h, vals[i])
		}
	case Record:
		h.Write([]byte("record:"))
		h.Write([]byte(x.Name))
		for _, f := range x.Fields {
			h.Write([]byte(f))
		}
		for _, v := range x.Values {
			hashInto(h, v)
		}
	case Tuple:
		h.Write([]byte("tuple:"))
		hashInto(h, x.A)
		hashInto(h, x.B)
	case Ref:
		h.Write([]byte("ref:"))
		h.Write([]byte(x.Id))
	case Thunk:
		h.Write([]byte("thunk:"))
		hashInto(h, x.Code)
	case Recur:
		h.Write([]byte("recur:"))
		for _, a := range x.Args {
			hashInto(h, a)
		}
	case Proc:
		h.Write([]byte("proc:"))
		h.Write([]byte(x.Name))
	case Syntax:
		h.Write([]byte("syntax:"))
		h.Write([]byte(x.NameString()))
	case Fn:
		h.Write([]byte("fn:"))
		h.Write([]byte(x.Id))
	case Macro:
		h.Write([]byte("macro:"))
		h.Write([]byte(x.Id))
	}
}

func writeUint64(h hasher, v uint64) {
	var buf [8]byte
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
	h.Write(buf[:])
}
