// Package loader mounts features on the fiber app.
//
// A Feature names itself, says whether it can run with the current
// configuration and registers its routes in Load. Manager loads features in
// registration order, skips disabled ones and returns the names it mounted,
// which start logs.
//
//	mgr := loader.NewManager()
//	mgr.Register(sorter.NewFeature(svc, log))
//	mgr.Register(history.NewFeature(repo, log)) // disabled without a database
//	loaded, err := mgr.LoadAll(app)
package loader
