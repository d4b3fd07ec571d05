// Manual smoke client for a locally running instance. Registers a signup,
// signs in as an admin and pulls the dashboard list.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/goccy/go-json"
)

func main() {
	base := flag.String("base", "http://localhost:8080/api/v1", "API base URL")
	email := flag.String("email", "smoke@example.com", "signup email")
	adminEmail := flag.String("admin-email", "", "admin account email")
	adminPassword := flag.String("admin-password", "", "admin account password")
	flag.Parse()

	get(*base + "/countdown")

	post(*base+"/signups", map[string]interface{}{
		"email": *email,
	})

	post(*base+"/registrations", map[string]interface{}{
		"full_name":     "Smoke Test",
		"email":         "reg+" + *email,
		"referral_code": "1",
		"accept_terms":  true,
	})

	if *adminEmail == "" {
		return
	}

	body := post(*base+"/auth/login", map[string]interface{}{
		"email":    *adminEmail,
		"password": *adminPassword,
	})

	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &login); err != nil || login.AccessToken == "" {
		log.Fatal("login failed, no token in response")
	}

	req, err := http.NewRequest(http.MethodGet, *base+"/admin/signups", nil)
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Authorization", "Bearer "+login.AccessToken)
	do(req)
}

func get(url string) []byte {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		log.Fatal(err)
	}
	return do(req)
}

func post(url string, payload map[string]interface{}) []byte {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		log.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	return do(req)
}

func do(req *http.Request) []byte {
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %s -> %s\n%s\n", req.Method, req.URL.Path, resp.Status, body)
	return body
}
