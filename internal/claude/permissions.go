package claude

// getPermissions returns the permissions object, creating it if necessary.
func (s *Settings) getPermissions() map[string]interface{} {
	perms, ok := s.data["permissions"].(map[string]interface{})
	if !ok {
		perms = make(map[string]interface{})
		s.data["permissions"] = perms
	}
	return perms
}

// getAllowList returns the permissions.allow list as strings.
func (s *Settings) getAllowList() []string {
	perms := s.getPermissions()
	allowRaw, ok := perms["allow"]
	if !ok {
		return nil
	}
	return interfaceSliceToStrings(allowRaw)
}

// interfaceSliceToStrings converts an interface{} that should be
// []interface{} containing strings to a []string. Returns nil if the
// conversion fails.
func interfaceSliceToStrings(v interface{}) []string {
	slice, ok := v.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}

// HasPermission checks if the given permission exists in the allow list.
func (s *Settings) HasPermission(perm string) bool {
	for _, p := range s.getAllowList() {
		if p == perm {
			return true
		}
	}
	return false
}

// AddPermission adds a permission to the allow list if not already present.
// Idempotent: the allow list is a set-like union keyed by the permission
// string, with existing order preserved. Returns true if the document
// changed.
func (s *Settings) AddPermission(perm string) bool {
	if s.HasPermission(perm) {
		return false
	}

	perms := s.getPermissions()
	allowList := s.getAllowList()

	// Convert to []interface{} for JSON compatibility
	newAllow := make([]interface{}, len(allowList)+1)
	for i, p := range allowList {
		newAllow[i] = p
	}
	newAllow[len(allowList)] = perm

	perms["allow"] = newAllow
	return true
}
