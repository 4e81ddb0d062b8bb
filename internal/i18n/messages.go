package i18n

var catalog = map[string]map[string]string{
	LocaleEN: en,
	LocaleUR: ur,
}

var en = map[string]string{
	"success":                        "success",
	"error.bad_request":              "Invalid request.",
	"error.unauthorized":             "Please login to continue.",
	"error.forbidden":                "You do not have permission to perform this action.",
	"error.not_found":                "Resource not found.",
	"error.too_many_requests":        "Too many attempts. Please try again later.",
	"error.internal":                 "Something went wrong. Please try again.",
	"error.user_id_invalid":          "Invalid user id.",
	"error.user_id_type_invalid":     "Invalid user id type.",
	"error.admin_id_invalid":         "Invalid admin id.",
	"error.admin_id_type_invalid":    "Invalid admin id type.",
	"error.token_invalid":            "Session expired. Please login again.",
	"error.token_missing":            "Please login to continue.",
	"error.user_disabled":            "This account has been disabled.",
	"error.invalid_credentials":      "Invalid email or password.",
	"error.email_invalid":            "Please enter a valid email address (e.g., name@example.com).",
	"error.email_exists":             "An account with this email already exists. Please login.",
	"error.name_invalid":             "Name must be at least 3 characters long.",
	"error.phone_invalid":            "Please enter a valid phone number (at least 10 digits).",
	"error.password_weak":            "Password must be at least 8 characters and contain a letter.",
	"error.password_invalid":         "Current password is incorrect.",
	"error.user_fetch_failed":        "Failed to load account.",
	"error.register_failed":          "Failed to create account.",
	"error.login_failed":             "Login failed.",
	"error.guest_token_missing":      "Guest token is required.",
	"error.product_not_found":        "Product not found.",
	"error.product_not_available":    "This product is no longer available.",
	"error.product_fetch_failed":     "Failed to load products.",
	"error.product_save_failed":      "Failed to save product.",
	"error.product_delete_failed":    "Failed to delete product.",
	"error.product_invalid":          "Product name, category and a valid price are required.",
	"error.category_not_found":       "Category not found.",
	"error.category_fetch_failed":    "Failed to load categories.",
	"error.category_save_failed":     "Failed to save category.",
	"error.category_delete_failed":   "Failed to delete category.",
	"error.category_invalid":         "Category name is required.",
	"error.category_in_use":          "This category still has products.",
	"error.cart_item_exists":         "This item is already in your cart.",
	"error.cart_item_not_found":      "This item is not in your cart.",
	"error.cart_empty":               "Your cart is empty.",
	"error.cart_fetch_failed":        "Failed to load cart.",
	"error.cart_update_failed":       "Failed to update cart.",
	"error.pending_item_failed":      "Failed to remember the selected item.",
	"error.checkout_failed":          "Something went wrong while placing your order: %s",
	"error.payment_method_invalid":   "Please choose Cash on Delivery or Bank Transfer.",
	"error.area_invalid":             "Please select your area.",
	"error.block_invalid":            "Please select your block/sector.",
	"error.delivery_charge_exists":   "This area already exists. Please update it instead.",
	"error.delivery_charge_invalid":  "Valid delivery charges amount is required",
	"error.delivery_charge_missing":  "Delivery charge not found.",
	"error.delivery_charge_failed":   "Failed to save delivery charges",
	"error.delivery_fetch_failed":    "Failed to load delivery charges.",
	"error.order_not_found":          "Order not found.",
	"error.order_fetch_failed":       "Failed to load orders.",
	"error.order_status_invalid":     "Invalid order status.",
	"error.order_status_terminal":    "This order has already been closed.",
	"error.order_update_failed":      "Failed to update order status.",
	"error.admin_limit_reached":      "Admin access is full. Maximum %d admin accounts allowed. Please contact existing admins for assistance.",
	"error.admin_request_pending":    "A request with this email is already pending approval.",
	"error.admin_pending_approval":   "Your admin request is still pending approval.",
	"error.admin_request_rejected":   "Your admin request was rejected.",
	"error.admin_request_not_found":  "Admin request not found.",
	"error.admin_request_reviewed":   "This admin request has already been reviewed.",
	"error.admin_request_failed":     "Failed to submit admin request.",
	"error.admin_fetch_failed":       "Failed to load admins.",
	"error.upload_failed":            "Failed to upload image.",
	"error.upload_too_large":         "Image is too large.",
	"error.upload_type_invalid":      "Only image files are allowed.",
	"error.queue_unavailable":        "Notification queue is unavailable.",
	"error.rate_limit_unavailable":   "Service is busy. Please try again shortly.",
	"error.rate_limited":             "Too many attempts. Please try again in %d seconds.",
	"error.password_min_length":      "Password must be at least %d characters long.",
	"error.password_require_letter":  "Password must contain at least one letter.",
	"error.password_require_upper":   "Password must contain at least one uppercase letter.",
	"error.password_require_lower":   "Password must contain at least one lowercase letter.",
	"error.password_require_number":  "Password must contain at least one number.",
	"error.password_require_special": "Password must contain at least one special character.",
	"error.password_too_long":        "Password must be at most %d bytes long.",
	"error.jwt_secret_missing":       "Authentication is not configured.",
	"error.auth_header_missing":      "Please login to continue.",
	"error.auth_header_invalid":      "Invalid authorization header.",
	"error.token_revoked":            "Session has been revoked. Please login again.",
	"error.login_too_many":           "Too many login attempts. Please try again in %d seconds.",
	"error.admin_forbidden":          "Only the super admin can review admin requests.",
	"error.slug_exists":              "A category with this slug already exists.",
	"error.role_invalid":             "Unknown admin role.",
	"error.upload_missing":           "Please choose an image to upload.",
	"success.cart_added":             "Added to cart.",
	"success.cart_already_present":   "This item is already in your cart.",
	"success.order_placed":           "Thank you! Your order has been placed. Our team will contact you for confirmation.",
	"success.delivery_created":       "✓ Delivery charges added successfully!",
	"success.delivery_updated":       "✓ Delivery charges updated successfully!",
	"success.delivery_deleted":       "✓ Delivery charges deleted successfully!",
	"success.order_status_updated":   "Order status updated.",
	"success.admin_approved":         "✓ Admin account for %s has been approved.",
	"success.admin_rejected":         "Admin request from %s has been rejected.",
	"success.admin_request_sent":     "Your admin request has been submitted. You can login once it is approved.",
}

// 乌尔都语只覆盖顾客侧常见提示，其余回退英文
var ur = map[string]string{
	"error.unauthorized":           "براہ کرم جاری رکھنے کے لیے لاگ ان کریں۔",
	"error.cart_empty":             "آپ کی کارٹ خالی ہے۔",
	"error.cart_item_exists":       "یہ چیز پہلے سے آپ کی کارٹ میں ہے۔",
	"success.cart_added":           "کارٹ میں شامل کر دیا گیا۔",
	"success.cart_already_present": "یہ چیز پہلے سے آپ کی کارٹ میں ہے۔",
	"success.order_placed":         "شکریہ! آپ کا آرڈر موصول ہو گیا ہے۔ ہماری ٹیم تصدیق کے لیے آپ سے رابطہ کرے گی۔",
}
