// Package factory holds the generic registry that turns a named module plus a
// raw key/value map into a concrete implementation. Metrics sinks and cash-flow
// model plugins are both built this way.
//
//	reg := factory.NewRegistry[coremetrics.MetricsSink]()
//	_ = reg.Register("nop", func(map[string]any) (coremetrics.MetricsSink, error) {
//	    return coremetrics.NopSink{}, nil
//	})
//	sink, err := reg.Create(factory.ModuleConfig{Type: "nop"})
//
// Decode and DecodeReport map raw settings onto structs through their json tags.
package factory
