package main

// @title SunFlight API
// @version 1.0
// @description API for finding the best aircraft seat to watch a sunrise or sunset during a flight
// @BasePath /api/v1
