package replacement

import (
	"github.com/kilianp07/batterycf/core/cashflow"
	"github.com/kilianp07/batterycf/core/factory"
	"github.com/kilianp07/batterycf/core/model"
)

// DefaultPlugin is the name under which BatteryModel is registered.
const DefaultPlugin = "BatteryReplacementCashFlowModel"

// Plugin is the lifecycle a host orchestrator drives: one call to precompute
// the derived time series, one call to produce the cash flow.
type Plugin interface {
	Initialize(p model.Parameters) (model.TimeAxis, model.ReliabilitySeries, error)
	Run(p model.Parameters, axis model.TimeAxis, rel model.ReliabilitySeries) (model.CashFlowSeries, error)
}

// BatteryModel adapts Initialize and Run to the Plugin interface.
type BatteryModel struct{}

func (BatteryModel) Initialize(p model.Parameters) (model.TimeAxis, model.ReliabilitySeries, error) {
	return Initialize(p)
}

func (BatteryModel) Run(p model.Parameters, axis model.TimeAxis, rel model.ReliabilitySeries) (model.CashFlowSeries, error) {
	return Run(p, axis, rel)
}

var pluginRegistry = factory.NewRegistry[Plugin]()

func init() {
	_ = RegisterPlugin(DefaultPlugin, func(map[string]any) (Plugin, error) {
		return BatteryModel{}, nil
	})
}

// RegisterPlugin adds a plugin factory identified by name.
func RegisterPlugin(name string, f factory.Factory[Plugin]) error {
	return pluginRegistry.Register(name, f)
}

// NewPlugin instantiates the plugin named in cfg. An empty type selects
// DefaultPlugin.
func NewPlugin(cfg factory.ModuleConfig) (Plugin, error) {
	if cfg.Type == "" {
		cfg.Type = DefaultPlugin
	}
	return pluginRegistry.Create(cfg)
}

// PluginNames lists the registered plugins.
func PluginNames() []string { return pluginRegistry.Names() }

// EvaluateWith runs both stages of plugin and summarises the outcome.
func EvaluateWith(plugin Plugin, p model.Parameters) (Result, error) {
	axis, rel, err := plugin.Initialize(p)
	if err != nil {
		return Result{}, err
	}
	cf, err := plugin.Run(p, axis, rel)
	if err != nil {
		return Result{}, err
	}
	return Result{Parameters: p, Reliability: rel, CashFlow: cf, Summary: cashflow.Summarize(cf)}, nil
}
