// Package nfl implements a numerical-feature-learning transform that
// flattens a key distribution before handing keys to [afli.AFLI].
//
// Typical use:
//
//	cfg, _ := nfl.LoadConfig("nfl.conf")
//	n, _ := nfl.New[int64](cfg, batchSize)
//	_ = n.BulkLoad(initial)
//	n.Transform(batch)
//	for i := range batch {
//	    it := n.Find(i)
//	}
//
// Whether the transform actually runs is decided once, at BulkLoad time,
// by [AutoSwitch]; from the caller's point of view Find/Insert/Update/
// Remove behave identically either way.
package nfl
