package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ivline11/nft-rental-dapp/internal/cache"
	"github.com/ivline11/nft-rental-dapp/internal/client/sui"
	"github.com/ivline11/nft-rental-dapp/internal/config"
	"github.com/ivline11/nft-rental-dapp/internal/handlers"
	"github.com/ivline11/nft-rental-dapp/internal/rental"
	"github.com/ivline11/nft-rental-dapp/internal/signer"
	"github.com/ivline11/nft-rental-dapp/internal/txbuilder"
)

// NewRouter wires the service graph and the HTTP routes. The handlers are
// a thin presentation facade; everything behind them composes the chain
// client, the transaction builder, the signing gateway and the read cache.
func NewRouter(cfg *config.Config) *gin.Engine {
	chain := sui.NewSuiClient(cfg.RPCURL)
	walletSigner := signer.NewWalletClient(cfg.WalletURL, chain)
	builder := txbuilder.NewBuilder(cfg)
	store := cache.NewTTLStore(cfg.CacheTTL)

	kioskService := rental.NewKioskService(chain, walletSigner, builder, store, cfg)
	rentalService := rental.NewRentalService(chain, walletSigner, builder, kioskService, store, cfg)

	kioskHandler := handlers.NewKioskHandler(kioskService)
	rentalHandler := handlers.NewRentalHandler(rentalService)

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "X-Wallet-Address")
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/v1")
	{
		kiosk := v1.Group("/kiosk")
		{
			kiosk.GET("", kioskHandler.GetKiosk)
			kiosk.POST("", kioskHandler.CreateKiosk)
			kiosk.POST("/extension", kioskHandler.InstallExtension)
			kiosk.DELETE("/extension", kioskHandler.RemoveExtension)
			kiosk.GET("/nfts", kioskHandler.GetKioskNFTs)
			kiosk.DELETE("/nfts/:nft_id", kioskHandler.RemoveNFT)
		}

		nfts := v1.Group("/nfts")
		{
			nfts.GET("", rentalHandler.GetUserNFTs)
			nfts.POST("", rentalHandler.CreateNFT)
			nfts.POST("/place", rentalHandler.PlaceInKiosk)
		}

		rentals := v1.Group("/rentals")
		{
			rentals.GET("/listings", rentalHandler.GetListings)
			rentals.GET("/rented", rentalHandler.GetRentedNFTs)
			rentals.POST("/policy", rentalHandler.SetupRenting)
			rentals.POST("/list", rentalHandler.ListForRent)
			rentals.POST("/rent", rentalHandler.Rent)
			rentals.POST("/return", rentalHandler.ReturnNFT)
		}
	}

	return router
}
