// Package loader registers HTTP features on the Fiber app.
//
// A Feature names itself, reports whether it is enabled and mounts its routes
// in Load. The Manager loads features in registration order, skips disabled
// ones, refuses duplicate names and stops at the first Load error.
//
//	mgr := loader.NewManager(logg)
//	mgr.Register(objects.NewFeature(client, logg, db))
//	if err := mgr.LoadAll(app); err != nil {
//	    return err
//	}
package loader
