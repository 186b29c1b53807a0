package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/garden-shop/internal/handler"
)

// Генератор гонки за остаток: несколько покупателей одновременно заказывают один вариант.
var (
	baseURL   = flag.String("url", "http://localhost:9000", "адрес сервиса")
	email     = flag.String("email", "gardener@example.com", "email покупателя")
	password  = flag.String("password", "garden", "пароль покупателя")
	sku       = flag.String("sku", "SEED-BASIL", "SKU варианта")
	addressID = flag.Int64("address", 1, "ID адреса доставки и оплаты")
	quantity  = flag.Int("quantity", 1, "количество в одном заказе")
	workers   = flag.Int("workers", 10, "число одновременных заказов")
	rounds    = flag.Int("rounds", 5, "число волн")
)

type stats struct {
	created   atomic.Int64
	conflicts atomic.Int64
	failed    atomic.Int64
}

func login(ctx context.Context, client *http.Client) (string, error) {
	var res handler.LoginResponse
	status, err := post(ctx, client, "/auth/login", "", handler.LoginRequest{Email: *email, Password: *password}, &res)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("login failed: %d", status)
	}
	return res.AccessToken, nil
}

func post(ctx context.Context, client *http.Client, path, token string, body, out any) (int, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, *baseURL+path, bytes.NewReader(data))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if out != nil && resp.StatusCode < 300 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, err
		}
	}
	return resp.StatusCode, nil
}

func placeOrder(ctx context.Context, client *http.Client, token string, s *stats) {
	req := handler.CreateOrderRequest{
		DeliveryAddressID: *addressID,
		BillingAddressID:  *addressID,
		Lines:             []handler.LineRequest{{SKU: *sku, Quantity: *quantity}},
	}

	var order handler.Order
	status, err := post(ctx, client, "/orders", token, req, &order)
	switch {
	case err != nil:
		s.failed.Add(1)
		log.Println("request failed:", err)
	case status == http.StatusCreated:
		s.created.Add(1)
		log.Println("order created", order.ID)
	case status == http.StatusConflict:
		s.conflicts.Add(1)
	default:
		s.failed.Add(1)
		log.Println("unexpected status", status)
	}
}

func main() {
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	client := &http.Client{Timeout: 5 * time.Second}
	token, err := login(ctx, client)
	if err != nil {
		log.Fatal(err)
	}

	var s stats
	for range *rounds {
		var wg sync.WaitGroup
		for range *workers {
			wg.Go(func() { placeOrder(ctx, client, token, &s) })
		}
		wg.Wait()

		if ctx.Err() != nil {
			break
		}
		time.Sleep(200 * time.Millisecond)
	}

	log.Printf("created=%d conflicts=%d failed=%d", s.created.Load(), s.conflicts.Load(), s.failed.Load())
}
