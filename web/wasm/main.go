//go:build js && wasm

package main

import (
	"strings"
	"syscall/js"

	"github.com/cwbudde/algo-zplane/dsp/draw"
	"github.com/cwbudde/algo-zplane/dsp/playback"
	"github.com/cwbudde/algo-zplane/dsp/zplane"
	"github.com/cwbudde/algo-zplane/dsp/zpk"
	"github.com/cwbudde/algo-zplane/internal/designer"
)

var (
	engine *designer.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		var opts []designer.Option
		if len(args) > 0 && args[0].Type() == js.TypeObject {
			o := args[0]
			if v := o.Get("points"); v.Type() == js.TypeNumber {
				opts = append(opts, designer.WithPoints(v.Int()))
			}
			if v := o.Get("gain"); v.Type() == js.TypeNumber {
				opts = append(opts, designer.WithGain(v.Float()))
			}
		}
		engine = designer.NewEngine(opts...)
		return js.Null()
	}))

	api.Set("onResponse", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		cb := args[0]
		engine.OnResponse(func(resp zpk.Response, goToEditor bool) {
			cb.Invoke(responseValue(resp), goToEditor)
		})
		return js.Null()
	}))

	api.Set("onPreview", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		cb := args[0]
		engine.OnPreview(func(p designer.Preview) {
			cb.Invoke(p.Entry.Label(), responseValue(p.Response))
		})
		return js.Null()
	}))

	api.Set("addZero", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		return engine.Model().AddZero(complexArg(args), conjArg(args)).String()
	}))

	api.Set("addPole", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return js.Null()
		}
		return engine.Model().AddPole(complexArg(args), conjArg(args)).String()
	}))

	api.Set("move", export(func(args []js.Value) any {
		if engine == nil || len(args) < 4 {
			return js.Null()
		}
		id, err := zplane.ParsePairID(args[0].String())
		if err != nil {
			return err.Error()
		}
		slot := zplane.PrimarySlot
		if args[1].String() == zplane.ConjugateSlot.String() {
			slot = zplane.ConjugateSlot
		}
		if err := engine.Model().Move(id, slot, complexArg(args[2:])); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("remove", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		id, err := zplane.ParsePairID(args[0].String())
		if err != nil {
			return err.Error()
		}
		if err := engine.Model().Remove(id); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("removeAt", export(func(args []js.Value) any {
		if engine == nil || len(args) < 2 {
			return 0
		}
		return engine.Model().RemoveAt(complexArg(args))
	}))

	api.Set("clearZeros", export(func([]js.Value) any {
		if engine != nil {
			engine.Model().ClearZeros()
		}
		return js.Null()
	}))

	api.Set("clearPoles", export(func([]js.Value) any {
		if engine != nil {
			engine.Model().ClearPoles()
		}
		return js.Null()
	}))

	api.Set("clearAll", export(func([]js.Value) any {
		if engine != nil {
			engine.Model().ClearAll()
		}
		return js.Null()
	}))

	api.Set("markers", export(func([]js.Value) any {
		if engine == nil {
			return js.Global().Get("Array").New(0)
		}
		markers := engine.Model().Markers()
		arr := js.Global().Get("Array").New(len(markers))
		for i, m := range markers {
			item := js.Global().Get("Object").New()
			item.Set("id", m.ID.String())
			item.Set("kind", m.Kind.String())
			item.Set("slot", m.Slot.String())
			item.Set("re", real(m.Value))
			item.Set("im", imag(m.Value))
			arr.SetIndex(i, item)
		}
		return arr
	}))

	api.Set("setAllPassInput", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return false
		}
		return engine.SetAllPassInput(args[0].String())
	}))

	api.Set("submitAllPass", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return errValue(engine.SubmitAllPassInput())
	}))

	api.Set("addLibraryEntry", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errValue(engine.AddLibraryEntry(args[0].Int()))
	}))

	api.Set("previewLibraryEntry", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errValue(engine.PreviewLibraryEntry(args[0].Int()))
	}))

	api.Set("selectAllPass", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errValue(engine.SelectAllPass(args[0].Int()))
	}))

	api.Set("removeAllPass", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errValue(engine.RemoveAllPass(args[0].Int()))
	}))

	api.Set("response", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return responseValue(engine.Response())
	}))

	api.Set("roots", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		zeros, poles, err := engine.Roots()
		if err != nil {
			return err.Error()
		}
		obj := js.Global().Get("Object").New()
		obj.Set("zeros", rootsValue(zeros))
		obj.Set("poles", rootsValue(poles))
		return obj
	}))

	api.Set("status", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return errValue(engine.Status())
	}))

	api.Set("loadSignal", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		return errValue(engine.LoadSignal(strings.NewReader(args[0].String())))
	}))

	api.Set("view", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		return engine.View().String()
	}))

	api.Set("toggle", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		state, err := engine.TogglePlayback()
		if err != nil {
			return err.Error()
		}
		return state.String()
	}))

	api.Set("setSpeed", export(func(args []js.Value) any {
		if engine != nil && len(args) > 0 {
			engine.SetSpeed(args[0].Int())
		}
		return js.Null()
	}))

	api.Set("setResolution", export(func(args []js.Value) any {
		if engine != nil && len(args) > 0 {
			engine.SetResolution(args[0].Int())
		}
		return js.Null()
	}))

	api.Set("interval", export(func([]js.Value) any {
		if engine == nil {
			return 0
		}
		return engine.Player().Interval().Milliseconds()
	}))

	api.Set("tick", export(func([]js.Value) any {
		if engine == nil {
			return js.Null()
		}
		f, ok := engine.Tick()
		if !ok {
			return js.Null()
		}
		return frameValue(f)
	}))

	api.Set("drawSample", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		c, ok := engine.DrawSample(args[0].Float())
		if !ok {
			return js.Null()
		}
		return chunkValue(c)
	}))

	api.Set("resetDraw", export(func([]js.Value) any {
		if engine != nil {
			engine.ResetDraw()
		}
		return js.Null()
	}))

	js.Global().Set("ZPlane", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

func complexArg(args []js.Value) complex128 {
	return complex(args[0].Float(), args[1].Float())
}

func conjArg(args []js.Value) bool {
	return len(args) > 2 && args[2].Truthy()
}

func errValue(err error) any {
	if err != nil {
		return err.Error()
	}
	return js.Null()
}

func float64Array(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func responseValue(resp zpk.Response) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("frequencies", float64Array(resp.Frequencies))
	obj.Set("magnitudeDB", float64Array(resp.MagnitudeDB))
	obj.Set("phase", float64Array(resp.Phase))
	return obj
}

func rootsValue(roots []complex128) js.Value {
	arr := js.Global().Get("Array").New(len(roots))
	for i, r := range roots {
		item := js.Global().Get("Object").New()
		item.Set("re", real(r))
		item.Set("im", imag(r))
		arr.SetIndex(i, item)
	}
	return arr
}

func frameValue(f playback.Frame) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("cursor", f.Cursor)
	obj.Set("time", float64Array(f.Time))
	obj.Set("original", float64Array(f.Original))
	obj.Set("filtered", float64Array(f.Filtered))
	return obj
}

func chunkValue(c draw.Chunk) js.Value {
	obj := js.Global().Get("Object").New()
	obj.Set("originalX", float64Array(c.OriginalX))
	obj.Set("original", float64Array(c.Original))
	obj.Set("filteredX", float64Array(c.FilteredX))
	obj.Set("filtered", float64Array(c.Filtered))
	return obj
}
