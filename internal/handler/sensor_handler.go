package handler

import (
	"errors"

	"go-warehouse-stock/internal/model"
	"go-warehouse-stock/internal/service"

	"github.com/gofiber/fiber/v2"
)

type SensorHandler struct {
	service service.SensorService
}

func NewSensorHandler(s service.SensorService) *SensorHandler {
	return &SensorHandler{service: s}
}

func (h *SensorHandler) GetSensors(c *fiber.Ctx) error {
	sensors, err := h.service.ListSensors()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(sensors)
}

func (h *SensorHandler) CreateSensor(c *fiber.Ctx) error {
	var sensor model.Sensor
	if err := c.BodyParser(&sensor); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.CreateSensor(&sensor); err != nil {
		if errors.Is(err, service.ErrZoneNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sensor created", "data": sensor})
}

// DeleteSensor removes a sensor and every reading it owns
func (h *SensorHandler) DeleteSensor(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sensor ID"})
	}

	if err := h.service.DeleteSensor(id); err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Sensor deleted"})
}

// ReadingRequest is one reported reading; the payload is opaque
type ReadingRequest struct {
	Value string `json:"value"`
}

// RecordReading ingests a reading and refreshes the sensor's last_reading
// POST /api/v1/sensors/:id/data
func (h *SensorHandler) RecordReading(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sensor ID"})
	}

	var req ReadingRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	reading, err := h.service.RecordReading(id, req.Value)
	if err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"message": "Reading recorded", "data": reading})
}

// GetReadings lists the readings of one sensor
// GET /api/v1/sensors/:id/data
func (h *SensorHandler) GetReadings(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sensor ID"})
	}

	readings, err := h.service.ListReadings(id)
	if err != nil {
		if errors.Is(err, service.ErrSensorNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(readings)
}
