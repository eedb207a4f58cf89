package api

import (
	"github.com/gin-gonic/gin"
)

// RESTHandler определяет интерфейс для REST API обработчиков леджера
type RESTHandler interface {
	// HandleFact обрабатывает POST запрос на загрузку факта
	HandleFact(c *gin.Context)

	// ListFacts обрабатывает GET запрос на получение списка фактов
	ListFacts(c *gin.Context)

	// GetFact обрабатывает GET запрос на получение факта по идентификатору
	GetFact(c *gin.Context)

	// DeleteFact обрабатывает DELETE запрос на логическое удаление факта
	DeleteFact(c *gin.Context)

	// GenerateFacts обрабатывает GET запрос на генерацию истории фактов
	GenerateFacts(c *gin.Context)
}
