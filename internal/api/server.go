package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/yohan-cho/item-simulator/docs"
	v1 "github.com/yohan-cho/item-simulator/internal/api/handler/v1"
	"github.com/yohan-cho/item-simulator/internal/api/middleware"
	"github.com/yohan-cho/item-simulator/internal/config"
	"github.com/yohan-cho/item-simulator/internal/repository"
	"github.com/yohan-cho/item-simulator/internal/repository/dao"
	"github.com/yohan-cho/item-simulator/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	characterHandler := s.initCharacterHandler(db)
	itemHandler := s.initItemHandler(db)
	economyHandler := s.initEconomyHandler(db)
	s.MountHandlers(authHandler, characterHandler, itemHandler, economyHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	accountDAO := dao.NewAccountDAO(db)
	repo := repository.NewAccountRepository(accountDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initCharacterHandler(db *gorm.DB) *v1.CharacterHandler {
	characterDAO := dao.NewCharacterDAO(db)
	repo := repository.NewCharacterRepository(characterDAO)
	svc := service.NewCharacterService(repo)
	handler := v1.NewCharacterHandler(svc)

	return handler
}

func (s *Server) initItemHandler(db *gorm.DB) *v1.ItemHandler {
	itemDAO := dao.NewItemDAO(db)
	repo := repository.NewItemRepository(itemDAO)
	svc := service.NewItemService(repo)
	handler := v1.NewItemHandler(svc)

	return handler
}

func (s *Server) initEconomyHandler(db *gorm.DB) *v1.EconomyHandler {
	economyDAO := dao.NewEconomyDAO(db)
	repo := repository.NewEconomyRepository(economyDAO)
	itemRepo := repository.NewItemRepository(dao.NewItemDAO(db))
	svc := service.NewEconomyService(repo, itemRepo)
	handler := v1.NewEconomyHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
}

func (s *Server) MountHandlers(authHandler *v1.AuthHandler, characterHandler *v1.CharacterHandler, itemHandler *v1.ItemHandler, economyHandler *v1.EconomyHandler) {
	const basePath = "/api/v1"

	authenticator := middleware.NewAuthenticator(s.Config.API.JWTSigningKey)

	public := s.Router.Group(basePath)
	{
		public.POST("/sign-up", authHandler.HandleSignUp)
		public.POST("/sign-in", authHandler.HandleSignIn)
		public.GET("/items", itemHandler.HandleListItems)
		public.GET("/items-equip/:charID", economyHandler.HandleGetEquipment)
	}

	// Character detail is public but shows money only to the owner.
	detail := s.Router.Group(basePath, authenticator.DecodeJWT())
	{
		detail.GET("/characters/:charID", characterHandler.HandleGetCharacter)
	}

	protected := s.Router.Group(basePath, authenticator.VerifyJWT())
	{
		protected.POST("/characters", characterHandler.HandleCreateCharacter)
		protected.DELETE("/characters/:charID", characterHandler.HandleDeleteCharacter)
		protected.GET("/money/:charID", economyHandler.HandlePickupMoney)
		protected.POST("/items-add", itemHandler.HandleCreateItem)
		protected.GET("/items-inventory/:charID", economyHandler.HandleGetInventory)
		protected.PATCH("/items-buy/:charID", economyHandler.HandleBuyItems)
		protected.PATCH("/items-sell/:charID", economyHandler.HandleSellItems)
		protected.PATCH("/items-equip/:charID", economyHandler.HandleEquipItems)
		protected.PATCH("/items-takeOff/:charID", economyHandler.HandleUnequipItems)
	}

	s.Router.GET("/", v1.HandleHealthcheck)

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = basePath
	docs.SwaggerInfo.Title = "Item Simulator API"
	docs.SwaggerInfo.Description = "Accounts, characters and an item economy over HTTP."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
