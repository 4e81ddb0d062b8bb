package constants

// 订单状态常量
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusRejected  = "rejected"
)

// 付款方式常量
const (
	PaymentMethodCOD          = "COD"
	PaymentMethodBankTransfer = "Bank Transfer"
)

// 用户状态常量
const (
	UserStatusActive = "active"
)

// 管理员申请状态常量
const (
	AdminStatusPending  = "pending"
	AdminStatusApproved = "approved"
	AdminStatusRejected = "rejected"
)

// 异步任务常量
const (
	QueueDefault             = "default"
	TaskOrderPlacedEmail     = "order:placed_email"
	TaskOrderStatusEmail     = "order:status_email"
	TaskAdminRequestReceived = "admin:request_received"
)

// Redis 前缀
const (
	RedisPrefixDefault = "ks"
)

// 购物车投影存储
const (
	CartProjectionMemory = "memory"
	CartProjectionRedis  = "redis"
)

// 结账默认值
const (
	CurrencyDefault      = "PKR"
	DeliveryKeySeparator = " - "
)

// 请求头
const (
	HeaderGuestToken = "X-Guest-Token"
)
