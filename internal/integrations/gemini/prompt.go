package gemini

// systemInstruction системный промпт подбора квартиры.
// Модель должна вернуть только числовой ID - ответ парсится регуляркой,
// лишний текст допускается, но не приветствуется.
const systemInstruction = `You are an apartment matching assistant for a real estate agency.
You will receive a client query and a JSON list of available apartments.
Pick the single apartment that best matches the query.
Respond with ONLY the numeric id of the chosen apartment, nothing else.`

// contextTemplate шаблон пользовательского контекста:
// первый %s - запрос клиента, второй - JSON каталога
const contextTemplate = `Client query: %s

Available apartments:
%s`
