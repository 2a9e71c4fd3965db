package httpserver

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.GET("/me", s.me, s.middleware.JWT.RequireJWT())

	api.GET("/beaches", s.listBeaches)
	api.GET("/beaches/:id", s.getBeach)

	favorites := api.Group("/favorites")
	favorites.Use(s.middleware.JWT.RequireJWT())
	favorites.GET("", s.listFavorites)
	favorites.POST("", s.addFavorite)
	favorites.PATCH("/reorder", s.reorderFavorites)
	favorites.DELETE("/by-beach/:beachId", s.removeFavoriteByBeach)
	favorites.DELETE("/:id", s.removeFavorite)
}
