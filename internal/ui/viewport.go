package ui

// normalizeViewport clamps the cursor into the row count and slides the
// scroll offset so the cursor stays within the visible window. A count of
// zero pins both to zero; a non-positive height clamps the cursor only,
// which covers the moment before the first WindowSizeMsg arrives.
func normalizeViewport(cursor, offset, count, height int) (int, int) {
	if count <= 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > count-1 {
		cursor = count - 1
	}
	if height <= 0 {
		return cursor, 0
	}

	if count <= height {
		return cursor, 0
	}
	if offset > count-height {
		offset = count - height
	}
	if offset < 0 {
		offset = 0
	}
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+height {
		offset = cursor - height + 1
	}
	return cursor, offset
}
