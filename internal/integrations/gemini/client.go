package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"github.com/m04kA/RET-CalendarService/internal/domain"
)

// numberPattern выделяет числа из текстового ответа модели
var numberPattern = regexp.MustCompile(`\d+`)

// Client клиент для работы с Gemini API (REST generateContent)
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Gemini.
// Пустой apiKey не ошибка на этапе создания: эндпоинты, не требующие
// подбора, должны работать без ключа. Проверка выполняется при вызове.
func NewClient(baseURL, model, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Configured проверяет, что клиенту задан API ключ
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// FindBestApartment подбирает наиболее подходящую квартиру по текстовому
// запросу клиента. Модель получает каталог в JSON и возвращает ID;
// нераспознанный или невалидный ответ деградирует до первой квартиры
// каталога, а не до ошибки - подбор вспомогательный, звонок важнее.
func (c *Client) FindBestApartment(ctx context.Context, query string, apartments []domain.Apartment) (*domain.Apartment, error) {
	if !c.Configured() {
		return nil, ErrAPIKeyMissing
	}
	if len(apartments) == 0 {
		return nil, ErrEmptyCatalog
	}

	catalogJSON, err := json.MarshalIndent(apartments, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode catalog: %v", ErrInternal, err)
	}

	prompt := fmt.Sprintf(contextTemplate, query, string(catalogJSON))

	answer, err := c.generateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	apartmentID, ok := c.extractApartmentID(answer, apartments)
	if !ok {
		// Fallback: ID не распознан - возвращаем первую квартиру
		c.log.Warn("FindBestApartment: no valid apartment id in response %q, falling back to first", answer)
		apt := apartments[0]
		return &apt, nil
	}

	for _, apt := range apartments {
		if apt.ID == apartmentID {
			c.log.Info("FindBestApartment: matched apartment id=%d for query %q", apt.ID, query)
			result := apt
			return &result, nil
		}
	}

	apt := apartments[0]
	return &apt, nil
}

// generateContent вызывает REST эндпоинт generateContent и возвращает
// текст первого кандидата
func (c *Client) generateContent(ctx context.Context, prompt string) (string, error) {
	reqBody := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 10,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var result generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	text, ok := result.text()
	if !ok {
		return "", fmt.Errorf("%w: response has no candidates", ErrInvalidResponse)
	}

	return text, nil
}

// extractApartmentID вытаскивает валидный ID квартиры из текста ответа.
// Модель иногда добавляет лишний текст вокруг числа, поэтому перебираем
// все числа и берем первое, совпадающее с ID каталога.
func (c *Client) extractApartmentID(answer string, apartments []domain.Apartment) (int64, bool) {
	validIDs := make(map[int64]bool, len(apartments))
	for _, apt := range apartments {
		validIDs[apt.ID] = true
	}

	for _, match := range numberPattern.FindAllString(answer, -1) {
		var id int64
		if _, err := fmt.Sscanf(match, "%d", &id); err != nil {
			continue
		}
		if validIDs[id] {
			return id, true
		}
	}

	return 0, false
}
