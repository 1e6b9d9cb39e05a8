package fire

import (
	"strconv"

	"pixelfire/internal/core"
)

// Parameters describes the simulation settings for logs and the preview HUD.
func (f *Fire) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Strip",
			Params: []core.Parameter{
				intParam("num_pixels", "Pixels", f.cfg.NumPixels),
				int64Param("seed", "Seed", f.seed),
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("sparking", "Sparking", f.cfg.Sparking),
				floatParam("cooling", "Cooling", f.cfg.Cooling),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'g', -1, 64)}
}
