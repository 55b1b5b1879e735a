// Package attrs parses directive arguments and field marker tags into
// their validated forms. Parsing here is position-free; callers anchor
// the returned errors to declarations.
package attrs

import (
	"fmt"
	"go/token"
	"strings"
)

// ClassAttrs is the parsed form of a class directive.
type ClassAttrs struct {
	// Base is the engine type the class extends.
	Base string
	// HasInit reports whether a default constructor was requested.
	HasInit bool
}

// ParseClass parses the argument text of a class directive. A directive
// without an explicit base falls back to defaultBase. marker names the
// directive namespace for error messages.
func ParseClass(marker, args, defaultBase string) (ClassAttrs, error) {
	kv, err := ParseDirective(args)
	if err != nil {
		return ClassAttrs{}, err
	}

	attrs := ClassAttrs{Base: defaultBase}

	if v, ok := kv.Take("base"); ok {
		if v.Flag || v.Quoted || !token.IsIdentifier(v.Raw) {
			return ClassAttrs{}, fmt.Errorf("invalid value for %q argument", "base")
		}
		attrs.Base = v.Raw
	}

	if v, ok := kv.Take("init"); ok {
		if !v.Flag {
			return ClassAttrs{}, fmt.Errorf("argument %q must not have a value", "init")
		}
		attrs.HasInit = true
	}

	if keys := kv.Remaining(); len(keys) > 0 {
		return ClassAttrs{}, fmt.Errorf("unrecognized key %q in %s:class directive", keys[0], marker)
	}
	return attrs, nil
}

// Property is a parsed property descriptor. VariantTag keeps the
// declared variant type spelling uninterpreted; resolution happens
// later against the field's Go type.
type Property struct {
	Name       string
	VariantTag string
	Getter     string
	Setter     string
}

// propertyKeys lists the required descriptor keys in the order they are
// extracted. The first missing or malformed one aborts the parse.
var propertyKeys = []string{"name", "variant_type", "getter", "setter"}

// ParseProperty parses the argument text of a property directive. All
// four keys are required and must carry quoted string values.
func ParseProperty(marker, args string) (Property, error) {
	kv, err := ParseDirective(args)
	if err != nil {
		return Property{}, err
	}

	var prop Property
	dst := map[string]*string{
		"name":         &prop.Name,
		"variant_type": &prop.VariantTag,
		"getter":       &prop.Getter,
		"setter":       &prop.Setter,
	}
	for _, key := range propertyKeys {
		v, ok := kv.Take(key)
		if !ok {
			return Property{}, fmt.Errorf("%s:property directive without any %s", marker, key)
		}
		if !v.Quoted {
			return Property{}, fmt.Errorf("%s:property directive with a %s that isn't a quoted string", marker, key)
		}
		*dst[key] = v.Raw
	}

	if keys := kv.Remaining(); len(keys) > 0 {
		return Property{}, fmt.Errorf("unrecognized key %q in %s:property directive", keys[0], marker)
	}
	return prop, nil
}

// Markers are the roles a field's marker tag assigns.
type Markers struct {
	Base   bool
	Export bool
}

// ParseMarkers parses the comma-separated value of a field marker tag.
func ParseMarkers(marker, value string) (Markers, error) {
	var m Markers
	if value == "" {
		return m, fmt.Errorf("empty %s tag", marker)
	}
	for _, item := range strings.Split(value, ",") {
		switch item {
		case "base":
			m.Base = true
		case "export":
			m.Export = true
		default:
			return Markers{}, fmt.Errorf("unrecognized marker %q in %s tag", item, marker)
		}
	}
	return m, nil
}
