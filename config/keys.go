package config

import (
	"reflect"
	"strings"

	"github.com/kilianp07/batterycf/core/model"
)

// keyNode maps lowercased key segments to their json tag spelling.
type keyNode struct {
	name     string
	children map[string]*keyNode
}

// configKeys is the key tree of Config. The model section is keyed on
// model.Parameters because Config decodes it separately.
var configKeys = func() *keyNode {
	root := keysOf(reflect.TypeOf(Config{}))
	root.children["model"] = &keyNode{name: "model", children: keysOf(reflect.TypeOf(model.Parameters{})).children}
	return root
}()

func keysOf(t reflect.Type) *keyNode {
	n := &keyNode{children: map[string]*keyNode{}}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return n
	}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if tag == "-" {
			continue
		}
		if tag == "" {
			tag = f.Name
		}
		child := keysOf(f.Type)
		child.name = tag
		n.children[strings.ToLower(tag)] = child
	}
	return n
}

// canonicalKey restores the json tag spelling of a lowercased dotted key.
// Segments below an unknown one are kept as given.
func canonicalKey(key string) string {
	parts := strings.Split(key, ".")
	n := configKeys
	for i, p := range parts {
		child, ok := n.children[strings.ToLower(p)]
		if !ok {
			break
		}
		parts[i] = child.name
		n = child
	}
	return strings.Join(parts, ".")
}
