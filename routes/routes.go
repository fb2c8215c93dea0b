package routes

import (
	"github.com/gin-gonic/gin"

	"daleel-cms/handlers"
)

// Handlers bundles every route handler the API mounts. Tests build the
// same router as main by filling this struct against a fresh store.
type Handlers struct {
	Users      *handlers.UserHandler
	Categories *handlers.CategoryHandler
	Articles   *handlers.ArticleHandler
	Media      *handlers.MediaHandler
	Questions  *handlers.QuestionHandler
	Bookshelf  *handlers.BookshelfHandler
}

// Setup mounts the whole /api surface.
func Setup(router *gin.Engine, h Handlers) {
	api := router.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", h.Users.GetUsers)
			users.GET("/:id", h.Users.GetUser)
			users.PATCH("/:id/status", h.Users.UpdateStatus)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", h.Categories.GetCategories)
			categories.GET("/:id", h.Categories.GetCategory)
			categories.GET("/:id/subcategories", h.Categories.GetSubcategories)
			categories.GET("/slug/:slug", h.Categories.GetCategoryBySlug)
			categories.POST("", h.Categories.CreateCategory)
			categories.PUT("/:id", h.Categories.UpdateCategory)
			categories.DELETE("/:id", h.Categories.DeleteCategory)
		}

		articles := api.Group("/articles")
		{
			articles.GET("", h.Articles.GetArticles)
			articles.GET("/:id", h.Articles.GetArticle)
			articles.GET("/slug/:slug", h.Articles.GetArticleBySlug)
			articles.GET("/category/:categoryId", h.Articles.GetArticlesByCategory)
			articles.GET("/type/:type", h.Articles.GetArticlesByType)
			articles.POST("", h.Articles.CreateArticle)
			articles.PUT("/:id", h.Articles.UpdateArticle)
			articles.DELETE("/:id", h.Articles.DeleteArticle)
		}

		media := api.Group("/media")
		{
			media.GET("", h.Media.GetAllMedia)
			media.GET("/:id", h.Media.GetMedia)
			media.GET("/category/:categoryId", h.Media.GetMediaByCategory)
			media.GET("/type/:type", h.Media.GetMediaByType)
			media.GET("/article/:articleId", h.Media.GetMediaByArticle)
			media.POST("", h.Media.CreateMedia)
			media.PUT("/:id", h.Media.UpdateMedia)
			media.DELETE("/:id", h.Media.DeleteMedia)
		}

		questions := api.Group("/questions")
		{
			questions.GET("", h.Questions.GetQuestions)
			questions.GET("/:id", h.Questions.GetQuestion)
			questions.GET("/status/:status", h.Questions.GetQuestionsByStatus)
			questions.POST("", h.Questions.SubmitQuestion)
			questions.PATCH("/:id/status", h.Questions.UpdateStatus)
			questions.DELETE("/:id", h.Questions.DeleteQuestion)
		}

		libraries := api.Group("/libraries")
		{
			libraries.GET("", h.Bookshelf.GetLibraries)
			libraries.GET("/:id", h.Bookshelf.GetLibrary)
			libraries.POST("", h.Bookshelf.CreateLibrary)
			libraries.PUT("/:id", h.Bookshelf.UpdateLibrary)
			libraries.DELETE("/:id", h.Bookshelf.DeleteLibrary)
		}

		books := api.Group("/books")
		{
			books.GET("", h.Bookshelf.GetBooks)
			books.GET("/:id", h.Bookshelf.GetBook)
			books.POST("", h.Bookshelf.CreateBook)
			books.PUT("/:id", h.Bookshelf.UpdateBook)
			books.DELETE("/:id", h.Bookshelf.DeleteBook)
		}

		collections := api.Group("/collections")
		{
			collections.GET("", h.Bookshelf.GetCollections)
			collections.GET("/:id", h.Bookshelf.GetCollection)
			collections.POST("", h.Bookshelf.CreateCollection)
			collections.PUT("/:id", h.Bookshelf.UpdateCollection)
			collections.DELETE("/:id", h.Bookshelf.DeleteCollection)
		}
	}
}
