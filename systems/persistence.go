package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/actioninput/components"
	cfg "github.com/automoto/actioninput/config"
	"github.com/automoto/actioninput/input"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// BindingsStore is where saved bindings live. *gdata.Manager satisfies it.
type BindingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var bindingsStore BindingsStore

// InitPersistence opens the gdata store used for bindings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Input.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	bindingsStore = m
	return nil
}

// SetBindingsStore replaces the store, nil disables persistence
func SetBindingsStore(s BindingsStore) {
	bindingsStore = s
}

// RequestBindingsLoad starts loading saved bindings in the background. It
// reports false when persistence is off or another load or save is running.
func RequestBindingsLoad(e *ecs.ECS) bool {
	io, ok := startBindingsIO(e, components.BindingsLoading)
	if !ok {
		return false
	}

	store := bindingsStore
	go func() {
		io <- loadBindings(store)
	}()
	return true
}

// RequestBindingsSave snapshots the current bindings and writes them in the
// background. It reports false when persistence is off or another load or
// save is running.
func RequestBindingsSave(e *ecs.ECS) bool {
	data := getOrCreateInput(e)
	payload, err := json.Marshal(data.Map)
	if err != nil {
		log.Printf("Warning: Could not serialize bindings: %v", err)
		return false
	}

	io, ok := startBindingsIO(e, components.BindingsSaving)
	if !ok {
		return false
	}

	store := bindingsStore
	go func() {
		res := components.BindingsResult{Op: components.BindingsSaving}
		if err := store.SaveItem(cfg.Input.BindingsItem, payload); err != nil {
			res.Err = err
		}
		io <- res
	}()
	return true
}

func startBindingsIO(e *ecs.ECS, op components.BindingsOp) (chan components.BindingsResult, bool) {
	if bindingsStore == nil {
		return nil, false
	}
	state := getOrCreateBindingsIO(e)
	if state.Op != components.BindingsIdle {
		return nil, false
	}
	state.Op = op
	state.Done = make(chan components.BindingsResult, 1)
	return state.Done, true
}

func loadBindings(store BindingsStore) components.BindingsResult {
	res := components.BindingsResult{Op: components.BindingsLoading}
	data, err := store.LoadItem(cfg.Input.BindingsItem)
	if err != nil {
		res.Err = err
		return res
	}
	if len(data) == 0 {
		// No saved bindings yet, keep defaults
		return res
	}

	var s input.SerializedActionMap[cfg.ActionID, cfg.AxisID]
	if err := json.Unmarshal(data, &s); err != nil {
		res.Err = err
		return res
	}
	res.Bindings = &s
	return res
}

// UpdateBindingsIO applies a finished load or save. It never blocks.
func UpdateBindingsIO(e *ecs.ECS) {
	state := getOrCreateBindingsIO(e)
	if state.Op == components.BindingsIdle {
		return
	}

	var res components.BindingsResult
	select {
	case res = <-state.Done:
	default:
		return
	}
	state.Op = components.BindingsIdle
	state.Done = nil
	state.LastErr = res.Err

	if res.Err != nil {
		log.Printf("Warning: Could not %s bindings: %v", opVerb(res.Op), res.Err)
		return
	}

	switch res.Op {
	case components.BindingsLoading:
		if res.Bindings == nil {
			return
		}
		data := getOrCreateInput(e)
		if err := data.Map.SetSerialized(*res.Bindings); err != nil {
			state.LastErr = err
			log.Printf("Warning: Could not apply saved bindings: %v", err)
			return
		}
		data.State.Reset()
		if cfg.Debug.LogBindingIO {
			log.Printf("Loaded bindings from %q", cfg.Input.BindingsItem)
		}
	case components.BindingsSaving:
		if cfg.Debug.LogBindingIO {
			log.Printf("Saved bindings to %q", cfg.Input.BindingsItem)
		}
	}
}

// ResetBindings restores the default bindings
func ResetBindings(e *ecs.ECS) error {
	data := getOrCreateInput(e)
	m, err := cfg.NewDefaultBindings()
	if err != nil {
		log.Printf("Warning: Could not apply default bindings: %v", err)
		return err
	}
	*data.Map = *m
	data.State.Reset()
	return nil
}

func opVerb(op components.BindingsOp) string {
	if op == components.BindingsSaving {
		return "save"
	}
	return "load"
}

// getOrCreateBindingsIO returns the BindingsIO component of the input entity
func getOrCreateBindingsIO(e *ecs.ECS) *components.BindingsIOData {
	getOrCreateInput(e)
	entry, _ := components.BindingsIO.First(e.World)
	return components.BindingsIO.Get(entry)
}

// IsBindingsIOBusy reports whether a load or save is in flight
func IsBindingsIOBusy(e *ecs.ECS) bool {
	entry, ok := components.BindingsIO.First(e.World)
	return ok && components.BindingsIO.Get(entry).Op != components.BindingsIdle
}

// UpdateBindingHotkeys saves, loads or resets bindings on the global
// hotkey chords.
func UpdateBindingHotkeys(e *ecs.ECS) {
	in := getOrCreateInput(e).State

	switch {
	case in.JustPressed(cfg.ActionSaveBindings):
		if !RequestBindingsSave(e) {
			log.Printf("Warning: Could not save bindings: persistence busy or disabled")
		}
	case in.JustPressed(cfg.ActionLoadBindings):
		if !RequestBindingsLoad(e) {
			log.Printf("Warning: Could not load bindings: persistence busy or disabled")
		}
	case in.JustPressed(cfg.ActionResetBindings):
		if err := ResetBindings(e); err == nil && cfg.Debug.LogBindingIO {
			log.Printf("Restored default bindings")
		}
	}
}
