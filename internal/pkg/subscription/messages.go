package subscription

// permissionMessages maps each gated action to its static denial message.
// The gate deliberately returns only a boolean plus this fixed text, without
// the current usage or limit values.
var permissionMessages = map[Action]string{
	ActionAddCategory:        "You have reached the maximum number of categories allowed by your current plan",
	ActionAddItem:            "You have reached the maximum number of menu items allowed by your current plan",
	ActionUploadImage:        "You have reached the maximum number of images allowed by your current plan",
	ActionColorCustomization: "Color customization is not available on your current plan",
	ActionAnalytics:          "Analytics are not available on your current plan",
	ActionReviews:            "Reviews are not available on your current plan",
	ActionOnlineOrdering:     "Online ordering is not available on your current plan",
	ActionCustomDomain:       "A custom domain is not available on your current plan",
}

const defaultPermissionMessage = "You do not have permission to perform this action"

// PermissionErrorMessage returns the denial message for an action.
func PermissionErrorMessage(action Action) string {
	if msg, ok := permissionMessages[action]; ok {
		return msg
	}
	return defaultPermissionMessage
}
