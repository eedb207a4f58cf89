package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"payments-intelligence-system/internal/generator"
	"payments-intelligence-system/internal/logger"
	"payments-intelligence-system/internal/models"
	"payments-intelligence-system/internal/services"
)

type Handlers struct {
	ledgerService services.LedgerService
	generator     *generator.FactGenerator
}

// Создает новые обработчики REST API леджера
func NewHandlers(ledgerService services.LedgerService) *Handlers {
	return &Handlers{
		ledgerService: ledgerService,
		generator:     generator.NewFactGenerator(),
	}
}

// HandleFact обрабатывает POST запрос на загрузку факта в леджер
// @Summary Загрузить факт в леджер
// @Description Принимает предагрегированный факт (день × комбинация измерений), валидирует его и записывает в леджер. Событие изменения уходит в Kafka, по нему аналитический сервис сбрасывает кэш проекций.
// @Tags facts
// @Accept json
// @Produce json
// @Param fact body models.FactRequest true "Данные факта"
// @Success 201 {object} models.FactResponse "Факт загружен"
// @Failure 400 {object} map[string]string "Bad Request - нарушение ограничений записи"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /facts [post]
func (h *Handlers) HandleFact(c *gin.Context) {
	var req models.FactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	logger.LogEvent(logger.EventFactReceived, "ledger-service", "api", map[string]interface{}{
		"day":    req.Day,
		"entity": req.Entity,
		"amount": req.AmountTransacted,
	})

	response, err := h.ledgerService.IngestFact(&req)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load fact"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListFacts возвращает список последних фактов леджера
// @Summary Получить список фактов
// @Description Возвращает последние факты леджера. Логически удаленные строки скрыты, если не запрошены явно.
// @Tags facts
// @Accept json
// @Produce json
// @Param limit query int false "Лимит результатов (максимум 500)" default(100)
// @Param include_deleted query bool false "Включать логически удаленные факты" default(false)
// @Success 200 {object} map[string]interface{} "Список фактов"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /facts [get]
func (h *Handlers) ListFacts(c *gin.Context) {
	limit := 100
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 500 {
			limit = parsed
		}
	}

	includeDeleted := c.Query("include_deleted") == "true"

	facts, err := h.ledgerService.ListFacts(limit, includeDeleted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list facts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"facts": facts})
}

// GetFact возвращает факт по идентификатору
// @Summary Получить факт
// @Description Возвращает факт по идентификатору, включая логически удаленные
// @Tags facts
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор факта"
// @Success 200 {object} models.TransactionFact "Факт"
// @Failure 400 {object} map[string]string "Bad Request - нечисловой идентификатор"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /facts/{id} [get]
func (h *Handlers) GetFact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fact id must be an integer"})
		return
	}

	fact, err := h.ledgerService.GetFact(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get fact"})
		return
	}

	if fact == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
		return
	}

	c.JSON(http.StatusOK, fact)
}

// DeleteFact логически удаляет факт
// @Summary Удалить факт
// @Description Помечает факт как логически удаленный. Строка остается в леджере, но исчезает из всех проекций. Повторное удаление идемпотентно.
// @Tags facts
// @Accept json
// @Produce json
// @Param id path int true "Идентификатор факта"
// @Success 200 {object} map[string]interface{} "Факт удален"
// @Failure 400 {object} map[string]string "Bad Request - нечисловой идентификатор"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /facts/{id} [delete]
func (h *Handlers) DeleteFact(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Fact id must be an integer"})
		return
	}

	if err := h.ledgerService.DeleteFact(id); err != nil {
		if errors.Is(err, services.ErrFactNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Fact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete fact"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"fact_id": id,
		"message": "Fact soft-deleted successfully",
	})
}

// GenerateFacts генерирует и загружает синтетическую историю фактов
// @Summary Сгенерировать историю фактов
// @Description Генерирует синтетические факты за заданное число дней и загружает их в леджер. Истории хватает для лагов и скользящих средних временной проекции.
// @Tags facts
// @Accept json
// @Produce json
// @Param days query int false "Глубина истории в днях (максимум 365)" default(30)
// @Param per_day query int false "Фактов на день (максимум 50)" default(3)
// @Success 200 {object} map[string]interface{} "Итоги генерации"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /facts/generate [get]
func (h *Handlers) GenerateFacts(c *gin.Context) {
	days := 30
	if daysStr := c.Query("days"); daysStr != "" {
		if parsed, err := strconv.Atoi(daysStr); err == nil && parsed > 0 && parsed <= 365 {
			days = parsed
		}
	}

	perDay := 3
	if perDayStr := c.Query("per_day"); perDayStr != "" {
		if parsed, err := strconv.Atoi(perDayStr); err == nil && parsed > 0 && parsed <= 50 {
			perDay = parsed
		}
	}

	facts := h.generator.GenerateHistory(time.Now(), days, perDay)

	loaded := 0
	for _, fact := range facts {
		if _, err := h.ledgerService.IngestFact(fact); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":  "Failed to load generated facts",
				"loaded": loaded,
			})
			return
		}
		loaded++
	}

	c.JSON(http.StatusOK, gin.H{
		"generated": len(facts),
		"loaded":    loaded,
		"days":      days,
		"per_day":   perDay,
	})
}
