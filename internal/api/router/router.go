package router

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"futsal-booking/backend/config"
	"futsal-booking/backend/internal/api/handler"
	"futsal-booking/backend/internal/api/middleware"
	"futsal-booking/backend/internal/api/validation"
	"futsal-booking/backend/internal/model"
	"futsal-booking/backend/pkg/jwt"
)

// Setup 初始化并返回 Gin 路由引擎
// blacklist 与 limiter 为 nil 时分别跳过 Token 黑名单校验与限流
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, blacklist middleware.Blacklist, limiter middleware.RateLimiter, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	validation.Register()

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders(strings.HasPrefix(cfg.Server.BaseURL, "https")))
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimitBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	jwtAuth := middleware.JWTAuth(jwtMgr, blacklist)
	optionalAuth := middleware.OptionalAuth(jwtMgr, blacklist)
	adminOnly := middleware.RoleAuth(model.RoleAdmin)
	loginLimit := middleware.RateLimit(limiter, cfg.Auth.LoginRateLimit, time.Minute)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块
		auth := v1.Group("/auth")
		{
			auth.POST("/register", loginLimit, h.Auth.Register)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
			auth.POST("/logout", jwtAuth, h.Auth.Logout)
			auth.GET("/me", jwtAuth, h.Auth.GetCurrentUser)
			auth.PUT("/profile", jwtAuth, h.Auth.UpdateProfile)
		}

		// 球馆模块（列表与详情公开，管理员可见停用球馆）
		futsal := v1.Group("/futsal")
		{
			futsal.GET("", optionalAuth, h.Futsal.ListFutsals)
			futsal.GET("/:slug", h.Futsal.GetFutsal)
			futsal.POST("", jwtAuth, adminOnly, h.Futsal.CreateFutsal)
			futsal.PUT("/:id", jwtAuth, adminOnly, h.Futsal.UpdateFutsal)
			futsal.DELETE("/:id", jwtAuth, adminOnly, h.Futsal.DeleteFutsal)
		}

		// 场地模块
		court := v1.Group("/court")
		{
			court.GET("", h.Court.ListCourts)
			court.GET("/:id", h.Court.GetCourt)
			court.POST("", jwtAuth, adminOnly, h.Court.CreateCourt)
			court.PUT("/:id", jwtAuth, adminOnly, h.Court.UpdateCourt)
			court.DELETE("/:id", jwtAuth, adminOnly, h.Court.DeleteCourt)
		}

		// 场次模块（/available 需在 /:id 之前注册）
		slot := v1.Group("/slot")
		{
			slot.GET("", optionalAuth, h.Slot.ListSlots)
			slot.GET("/available", h.Slot.AvailableSlots)
			slot.GET("/:id", h.Slot.GetSlot)
			slot.POST("", jwtAuth, adminOnly, h.Slot.CreateSlot)
			slot.PUT("/:id", jwtAuth, adminOnly, h.Slot.UpdateSlot)
			slot.DELETE("/:id", jwtAuth, adminOnly, h.Slot.DeleteSlot)
		}

		// 闭馆日模块
		closingDay := v1.Group("/closing-day")
		{
			closingDay.GET("", h.ClosingDay.ListClosingDays)
			closingDay.POST("", jwtAuth, adminOnly, h.ClosingDay.CreateClosingDay)
			closingDay.DELETE("/:id", jwtAuth, adminOnly, h.ClosingDay.DeleteClosingDay)
		}

		// 横幅模块
		banner := v1.Group("/banner")
		{
			banner.GET("/list-home", h.Banner.ListHomeBanners)
			banner.GET("", jwtAuth, adminOnly, h.Banner.ListBanners)
			banner.GET("/:id", jwtAuth, adminOnly, h.Banner.GetBanner)
			banner.POST("", jwtAuth, adminOnly, h.Banner.CreateBanner)
			banner.PUT("/:id", jwtAuth, adminOnly, h.Banner.UpdateBanner)
			banner.DELETE("/:id", jwtAuth, adminOnly, h.Banner.DeleteBanner)
		}

		// 联系我们
		contact := v1.Group("/contactus")
		{
			contact.POST("", loginLimit, h.Contact.CreateMessage)
			contact.GET("", jwtAuth, adminOnly, h.Contact.ListMessages)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(jwtAuth)
		{
			// 积分模块
			creditPoint := authorized.Group("/credit-point")
			{
				creditPoint.GET("/list-home", h.CreditPoint.ListTransactions)
				creditPoint.GET("/view-point", h.CreditPoint.ViewPoints)
			}

			// 预订模块（/all 与 /calendar.ics 需在 /:id 之前注册）
			booking := authorized.Group("/booking")
			{
				booking.POST("", h.Booking.CreateBooking)
				booking.GET("", h.Booking.ListMyBookings)
				booking.GET("/all", adminOnly, h.Booking.ListAllBookings)
				booking.GET("/calendar.ics", h.Calendar.BookingFeed)
				booking.GET("/:id", h.Booking.GetBooking)
				booking.PUT("/:id/cancel", h.Booking.CancelBooking)
				booking.PUT("/:id/reschedule", h.Booking.RescheduleBooking)
			}

			// 数据导出
			export := authorized.Group("/export")
			export.Use(adminOnly)
			{
				export.GET("/bookings", h.Export.ExportBookings)
			}
		}
	}

	return r
}
