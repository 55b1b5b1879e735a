package gdext

// Load replays the plugin registry into db: every class is added first,
// then each constructible class is instantiated once so its property
// registrar can run. Hosts call Load exactly once at startup, after all
// generated init functions have appended their records.
func Load(db *ClassDB) error {
	snap := Snapshot()
	for _, p := range snap {
		if err := db.AddClass(p); err != nil {
			return err
		}
	}
	for _, p := range snap {
		if p.CreateFn == nil {
			continue
		}
		obj := p.CreateFn(Base{})
		reg, ok := obj.(PropertyRegistrar)
		if !ok {
			p.FreeFn(obj)
			continue
		}
		err := reg.RegisterProperties(db)
		p.FreeFn(obj)
		if err != nil {
			return err
		}
	}
	return nil
}
