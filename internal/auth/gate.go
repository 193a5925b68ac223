package auth

// CanManageAdvertisements reports whether the identity may create, update,
// or delete advertisements. Admin only.
func CanManageAdvertisements(id *Identity) bool {
	return id != nil && id.IsAdmin
}

// CanSubmitApplication reports whether the identity may submit a job
// application. Any authenticated user qualifies.
func CanSubmitApplication(id *Identity) bool {
	return id != nil
}

// CanUploadCVFor reports whether the identity may replace the CV on the
// target user's profile. Owner or admin.
func CanUploadCVFor(id *Identity, targetUserID uint) bool {
	if id == nil {
		return false
	}
	return id.UserID == targetUserID || id.IsAdmin
}
