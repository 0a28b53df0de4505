package telemetry

import "bytes"

// MaxTokens is the protocol limit on key/value pairs per line. Extra pairs are dropped.
const MaxTokens = 8

// Kind tags a telemetry update.
type Kind uint8

const (
	KindCPU Kind = iota + 1
	KindMem
	KindCPUTemp
	KindGPUTemp
	KindIdentify
)

func (k Kind) String() string {
	switch k {
	case KindCPU:
		return "cpu"
	case KindMem:
		return "mem"
	case KindCPUTemp:
		return "cpu_temp"
	case KindGPUTemp:
		return "gpu_temp"
	case KindIdentify:
		return "ident"
	default:
		return "unknown"
	}
}

// Update is one parsed observation. Value is unused for KindIdentify.
type Update struct {
	Kind  Kind
	Value uint8
}

type keySpec struct {
	kind      Kind
	needValue bool
}

var keys = map[string]keySpec{
	"cpu":      {kind: KindCPU, needValue: true},
	"mem":      {kind: KindMem, needValue: true},
	"cpu_temp": {kind: KindCPUTemp, needValue: true},
	"gpu_temp": {kind: KindGPUTemp, needValue: true},
	"ident":    {kind: KindIdentify},
}

// token is one comma-separated slot of a line. used distinguishes an unused
// slot from a present-but-empty token.
type token struct {
	used     bool
	key      []byte
	value    []byte
	hasColon bool
}

// Batch holds the updates parsed from one line, in line order.
type Batch struct {
	updates [MaxTokens]Update
	n       int
}

// Len returns the number of updates.
func (b *Batch) Len() int { return b.n }

// Updates returns the parsed updates. The slice aliases b.
func (b *Batch) Updates() []Update { return b.updates[:b.n] }

func (b *Batch) add(u Update) {
	if b.n < len(b.updates) {
		b.updates[b.n] = u
		b.n++
	}
}

// Parse turns one protocol line ("key:value,key:value,...") into updates.
//
// Unknown keys, empty keys, and value keys without a value are skipped; the
// rest of the line is still parsed. Numbers follow atoi rules and wrap to 0–255.
func Parse(line []byte) Batch {
	var toks [MaxTokens]token
	split(line, &toks)

	var b Batch
	for i := range toks {
		t := &toks[i]
		if !t.used || len(t.key) == 0 {
			continue
		}
		spec, ok := keys[string(t.key)]
		if !ok {
			continue
		}
		if !spec.needValue {
			b.add(Update{Kind: spec.kind})
			continue
		}
		if !t.hasColon || len(t.value) == 0 {
			continue
		}
		b.add(Update{Kind: spec.kind, Value: atou8(t.value)})
	}
	return b
}

func split(line []byte, toks *[MaxTokens]token) {
	rest := line
	for i := 0; i < len(toks); i++ {
		field, tail, more := bytes.Cut(rest, []byte{','})
		if len(field) > 0 {
			key, value, colon := bytes.Cut(field, []byte{':'})
			toks[i] = token{used: true, key: key, value: value, hasColon: colon}
		}
		if !more {
			return
		}
		rest = tail
	}
}

// atou8 parses like C atoi (leading spaces, optional sign, leading digits,
// anything else ends the number) and truncates the result to 8 bits.
func atou8(s []byte) uint8 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}
	var v uint8
	for ; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + (s[i] - '0')
	}
	if neg {
		v = -v
	}
	return v
}
