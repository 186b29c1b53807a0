package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/garden-shop/internal/entities"
)

const intentPrompt = `Analyse the customer request below and return a valid JSON object.
The object has a key "intent" and a key "items" holding a list of objects.

Possible values of "intent":
- "product_info": the customer asks about products, their stock or price;
- "place_order": the customer wants to buy the mentioned products;
- "general": any other question about gardening or the shop, greetings.

Each object in "items" contains:
- "sku": the exact product reference (e.g. "ROS-RED-M") when it is mentioned;
- "base_product": the generic product name (e.g. "rose") when there is no SKU;
- "attributes": an object with the requested attributes (e.g. {"size": "M", "color": "red"}) when there is no SKU;
- "quantity": the requested integer quantity, 1 when not specified.

Return only the JSON, without any text or markdown around it.

Customer request: %q
JSON:`

const chatPrompt = `You are the assistant of a gardening supplies web shop. Answer the customer helpfully and briefly.

Customer: %s
Assistant:`

type intentPayload struct {
	Intent string `json:"intent"`
	Items  []struct {
		SKU         string         `json:"sku"`
		BaseProduct string         `json:"base_product"`
		Attributes  map[string]any `json:"attributes"`
		Quantity    int            `json:"quantity"`
	} `json:"items"`
}

// ParseIntent просит модель вернуть JSON и приводит его к entities.Intent.
// Незнакомое намерение считается общим вопросом.
func (c *Client) ParseIntent(ctx context.Context, message string) (entities.Intent, error) {
	raw, err := c.generate(ctx, fmt.Sprintf(intentPrompt, message), true)
	if err != nil {
		return entities.Intent{}, err
	}
	return decodeIntent(raw)
}

func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	return c.generate(ctx, fmt.Sprintf(chatPrompt, message), false)
}

func decodeIntent(raw string) (entities.Intent, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var p intentPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return entities.Intent{}, fmt.Errorf("failed to decode intent: %w", err)
	}

	intent := entities.Intent{Kind: entities.IntentKind(strings.ToLower(strings.TrimSpace(p.Intent)))}
	switch intent.Kind {
	case entities.IntentPlaceOrder, entities.IntentProductInfo, entities.IntentGeneral:
	default:
		intent.Kind = entities.IntentGeneral
	}

	for _, it := range p.Items {
		item := entities.IntentItem{
			SKU:         strings.TrimSpace(it.SKU),
			BaseProduct: strings.TrimSpace(it.BaseProduct),
			Quantity:    it.Quantity,
			Attributes:  make(map[string]string, len(it.Attributes)),
		}
		for k, v := range it.Attributes {
			item.Attributes[k] = fmt.Sprint(v)
		}
		if item.SKU == "" && item.BaseProduct == "" {
			continue
		}
		intent.Items = append(intent.Items, item)
	}
	return intent, nil
}
