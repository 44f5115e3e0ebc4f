package gcal

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/sheets/v4"

	"brasscal/config"
)

// NewClient returns an authenticated HTTP client for the calendar and
// spreadsheet APIs. A cached token is refreshed and re-saved as needed;
// when no token exists, the local-server consent flow runs. Missing
// credentials are fatal to the run.
func NewClient(ctx context.Context, loader config.Loader) (*http.Client, error) {
	credBytes, err := loader.LoadCredentials()
	if err != nil {
		return nil, fmt.Errorf("loading credentials: %w", err)
	}

	conf, err := google.ConfigFromJSON(credBytes, calendar.CalendarScope, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secret file to config: %w", err)
	}

	token, err := loadOrObtainToken(ctx, conf, loader)
	if err != nil {
		return nil, fmt.Errorf("getting token: %w", err)
	}

	return conf.Client(ctx, token), nil
}

// loadOrObtainToken loads a token from storage or obtains a new one if
// necessary. A stored token that refreshes to a new access token is
// persisted so the next run skips the refresh.
func loadOrObtainToken(ctx context.Context, conf *oauth2.Config, loader config.Loader) (*oauth2.Token, error) {
	tokenBytes, err := loader.LoadToken()
	if err != nil {
		// No token found, initiate OAuth2 flow.
		return getTokenFromWeb(conf, loader)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenBytes, &tok); err != nil {
		return nil, fmt.Errorf("unmarshalling token: %w", err)
	}

	fresh, err := conf.TokenSource(ctx, &tok).Token()
	if err != nil {
		// Refresh token expired or revoked; run the consent flow again.
		return getTokenFromWeb(conf, loader)
	}
	if fresh.AccessToken != tok.AccessToken {
		if err := saveToken(fresh, loader); err != nil {
			return nil, err
		}
	}
	return fresh, nil
}

// getTokenFromWeb handles the OAuth2 consent flow via a short-lived
// local HTTP server.
func getTokenFromWeb(conf *oauth2.Config, loader config.Loader) (*oauth2.Token, error) {
	state := randomState()
	codeCh := make(chan string)
	srv := &http.Server{Addr: ":8066"}

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("state") != state {
			_, _ = fmt.Fprintln(w, "Invalid state")
			return
		}
		code := r.URL.Query().Get("code")
		_, _ = fmt.Fprintln(w, "Received authentication code. You can close this page now.")
		codeCh <- code
	})

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe error: %v", err)
		}
	}()

	authURL := conf.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("redirect_uri", "http://localhost:8066/"),
	)
	fmt.Printf("Go to the following link in your browser:\n%v\n", authURL)

	authCode := <-codeCh
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("HTTP server Shutdown: %v", err)
	}

	tok, err := conf.Exchange(context.Background(), authCode,
		oauth2.SetAuthURLParam("redirect_uri", "http://localhost:8066/"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve token from web: %w", err)
	}

	if err := saveToken(tok, loader); err != nil {
		return nil, err
	}
	return tok, nil
}

func saveToken(tok *oauth2.Token, loader config.Loader) error {
	tokenBytes, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("json.Marshal token: %w", err)
	}
	if err := loader.SaveToken(tokenBytes); err != nil {
		return fmt.Errorf("unable to save token: %w", err)
	}
	return nil
}

// randomState generates the anti-CSRF state parameter.
func randomState() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("reading random state: %v", err)
	}
	return hex.EncodeToString(b)
}
