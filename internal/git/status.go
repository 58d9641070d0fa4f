package git

// Summarize folds status entries into a LocalChanges value.
func Summarize(entries []StatusEntry) LocalChanges {
	var res LocalChanges
	for _, e := range entries {
		switch {
		case e.IsUntracked():
			res.Untracked++
			continue
		case e.IndexState == '!' && e.WorktreeState == '!':
			continue
		case isConflict(e):
			res.Conflicted++
			res.HasStaged = true
			res.HasWorktree = true
			continue
		}
		if e.IsRename() {
			res.Renamed++
		}
		if e.IndexState != ' ' {
			res.HasStaged = true
		}
		if e.WorktreeState != ' ' {
			res.HasWorktree = true
		}
	}
	return res
}

// isConflict matches the unmerged XY pairs: DD, AU, UD, UA, DU, AA, UU.
func isConflict(e StatusEntry) bool {
	x, y := e.IndexState, e.WorktreeState
	return x == 'U' || y == 'U' || (x == 'A' && y == 'A') || (x == 'D' && y == 'D')
}
