package board

// Lookups are linear scans over the cached slices.

// FilterListsByName returns the lists whose name is in names, keeping their order.
func FilterListsByName(lists []List, names ...string) []List {
	set := stringSet(names)
	result := []List{}
	for _, l := range lists {
		if _, ok := set[l.Name]; ok {
			result = append(result, l)
		}
	}
	return result
}

// FilterMembersByUsername returns the members whose username is in usernames, keeping their order.
func FilterMembersByUsername(members []Member, usernames ...string) []Member {
	set := stringSet(usernames)
	result := []Member{}
	for _, m := range members {
		if _, ok := set[m.Username]; ok {
			result = append(result, m)
		}
	}
	return result
}

// FilterComments returns the comment actions, keeping their order.
func FilterComments(actions []Action) []Action {
	result := []Action{}
	for _, a := range actions {
		if a.Type == CommentActionType {
			result = append(result, a)
		}
	}
	return result
}

// IndexOfList returns the position of the first list named name.
func IndexOfList(lists []List, name string) (int, bool) {
	for i, l := range lists {
		if l.Name == name {
			return i, true
		}
	}
	return 0, false
}

func stringSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
