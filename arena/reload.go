package arena

import (
	"path"
	"strings"

	"github.com/milk9111/skirmish/variant"
)

// Reload applies an edited prefab file to the running fight. name is
// relative to the prefab root, as reported by prefabs.Watcher. Files the
// arena never loaded are ignored.
func (a *Arena) Reload(name string) error {
	name = path.Clean(strings.ReplaceAll(name, "\\", "/"))
	switch {
	case path.Ext(name) == ".tengo":
		return a.reloadScript(strings.TrimPrefix(name, "scripts/"))
	case path.Base(name) == "pickups.yaml":
		return a.reloadPickups()
	default:
		return a.reloadPrefab(strings.TrimSuffix(path.Base(name), path.Ext(name)))
	}
}

func (a *Arena) reloadScript(name string) error {
	if _, ok := a.scripts[name]; !ok {
		return nil
	}
	src, err := a.opts.LoadScript(name)
	if err != nil {
		return err
	}
	script, err := variant.CompileScript(name, src)
	if err != nil {
		return err
	}
	a.scripts[name] = script

	n := 0
	for _, e := range a.enemies {
		if s, ok := e.variant.(*variant.Scripted); ok && s.Script().Name() == name {
			s.SetScript(script)
			n++
		}
	}
	a.log.Info("script reloaded", "script", name, "actors", n)
	return nil
}

func (a *Arena) reloadPickups() error {
	table, err := a.opts.LoadPickups()
	if err != nil {
		return err
	}
	a.pickupTable = table
	for _, p := range a.pickups {
		if spec, ok := table.Lookup(p.Spec.Name); ok {
			p.Spec = spec
		}
	}
	a.log.Info("pickups reloaded", "count", len(table.Pickups))
	return nil
}

// reloadPrefab retunes every live actor spawned from prefab. Actors of one
// prefab share a config, so a fresh one is built and handed to each.
func (a *Arena) reloadPrefab(prefab string) error {
	if _, ok := a.specs[prefab]; !ok {
		return nil
	}
	spec, err := a.opts.LoadSpec(prefab)
	if err != nil {
		return err
	}
	cfg := spec.Config()

	for _, c := range a.combatants() {
		if c.Prefab != prefab {
			continue
		}
		if err := c.Actor.Retune(&cfg); err != nil {
			return err
		}
		c.Spec = spec
		switch v := c.variant.(type) {
		case *variant.Enemy:
			v.SetTuning(spec.Tuning())
		case *variant.Scripted:
			v.SetTuning(spec.Tuning())
		}
	}
	a.specs[prefab] = spec
	a.configs[prefab] = &cfg
	a.log.Info("prefab reloaded", "prefab", prefab)
	return nil
}
