package report

import "github.com/stretchr/objx"

// Default-to-empty accessors over the bureau's deeply nested, everywhere-
// optional JSON. Every lookup tolerates a missing parent section; list
// lookups always return a non-nil slice. The normalizer never errors on
// absent vendor fields.

// value returns the raw value at a dot path, or nil when absent.
func value(m objx.Map, path string) any {
	return m.Get(path).Inter()
}

// translated applies f to the string at path; a missing or non-string value
// yields nil rather than translating an empty string.
func translated(m objx.Map, path string, f func(string) string) any {
	if s, ok := m.Get(path).Inter().(string); ok {
		return f(s)
	}
	return nil
}

// maps returns the list of objects at path, skipping non-object entries.
func maps(m objx.Map, path string) []objx.Map {
	raw := m.Get(path).InterSlice()
	out := make([]objx.Map, 0, len(raw))
	for _, item := range raw {
		if mm, ok := item.(map[string]any); ok {
			out = append(out, objx.Map(mm))
		}
	}
	return out
}

// values returns the list at path verbatim, never nil.
func values(m objx.Map, path string) []any {
	raw := m.Get(path).InterSlice()
	out := make([]any, 0, len(raw))
	return append(out, raw...)
}

// translatedValues applies f to every string entry of the list at path,
// passing non-string entries through untouched.
func translatedValues(m objx.Map, path string, f func(string) string) []any {
	raw := m.Get(path).InterSlice()
	out := make([]any, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, f(s))
			continue
		}
		out = append(out, item)
	}
	return out
}

// section returns the object at path as a Map, empty when absent so chained
// lookups keep working.
func section(m objx.Map, path string) objx.Map {
	return objx.Map(m.Get(path).MSI())
}

// endereco flattens one vendor address object.
func endereco(m objx.Map) Endereco {
	return Endereco{
		Logradouro:  value(m, "street"),
		Numero:      value(m, "number"),
		Complemento: value(m, "complement"),
		Bairro:      value(m, "neighborhood"),
		Cidade:      value(m, "city"),
		Estado:      value(m, "state"),
		CEP:         value(m, "zipCode"),
	}
}
