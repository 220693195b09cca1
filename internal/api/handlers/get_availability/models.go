package get_availability

import (
	"strconv"
	"time"

	"github.com/glamora-dev/GLM-SchedulingService/internal/domain"
	getAvailability "github.com/glamora-dev/GLM-SchedulingService/internal/usecase/get_availability"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
}

// FreeWindowResponse HTTP модель свободного окна
type FreeWindowResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// AvailabilityResponse HTTP модель ответа
type AvailabilityResponse struct {
	MasterID           int64                `json:"masterId"`
	Date               string               `json:"date"`
	GranularityMinutes int                  `json:"granularityMinutes"`
	Slots              []SlotResponse       `json:"slots"`
	FreeWindows        []FreeWindowResponse `json:"freeWindows"`
}

// ToUseCaseRequest собирает модель use case из path- и query-параметров
func ToUseCaseRequest(masterID int64, dateStr, granularityStr, serviceIDStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{
		MasterID: masterID,
		Date:     date,
	}

	if granularityStr != "" {
		granularity, err := strconv.Atoi(granularityStr)
		if err != nil {
			return nil, err
		}
		req.GranularityMinutes = &granularity
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:   s.StartTime.String(),
			EndTime:     s.EndTime.String(),
			IsAvailable: s.IsAvailable,
		}
	}

	windows := make([]FreeWindowResponse, len(resp.FreeWindows))
	for i, w := range resp.FreeWindows {
		windows[i] = FreeWindowResponse{
			StartTime: w.StartTime.String(),
			EndTime:   w.EndTime.String(),
		}
	}

	return &AvailabilityResponse{
		MasterID:           resp.MasterID,
		Date:               resp.Date.Format(domain.DateFormat),
		GranularityMinutes: resp.GranularityMinutes,
		Slots:              slots,
		FreeWindows:        windows,
	}
}
