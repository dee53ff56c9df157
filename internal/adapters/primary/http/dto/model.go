package dto

import "car-price-service/internal/core/domain"

type BoundResponse struct {
	Feature string  `json:"feature"`
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
}

type ModelInfoResponse struct {
	Kind        string          `json:"kind"`
	Features    []string        `json:"features"`
	Bounds      []BoundResponse `json:"bounds"`
	Source      string          `json:"source"`
	Fingerprint string          `json:"fingerprint"`
	Scaled      bool            `json:"scaled"`
}

func ToModelInfoResponse(info domain.ModelInfo) ModelInfoResponse {
	bounds := make([]BoundResponse, 0, len(domain.FeatureBounds))
	for _, b := range domain.FeatureBounds {
		bounds = append(bounds, BoundResponse{Feature: b.Feature, Label: b.Label, Min: b.Min, Max: b.Max, Step: b.Step})
	}
	return ModelInfoResponse{
		Kind:        string(info.Kind),
		Features:    info.Features,
		Bounds:      bounds,
		Source:      info.Source,
		Fingerprint: info.Fingerprint,
		Scaled:      info.Scaled,
	}
}

type AboutResponse struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Dataset     string   `json:"dataset"`
	Author      string   `json:"author"`
	Course      string   `json:"course"`
	ImageURL    string   `json:"image_url"`
}

// About is the static content of the about page.
var About = AboutResponse{
	Title:       "About",
	Description: "Predicts a car's selling price from a handful of key attributes using a pre-trained linear regression model.",
	Features:    []string{"Highway MPG", "Curb Weight", "Horsepower", "Car Width"},
	Dataset:     "CarPrice.csv",
	Author:      "Aditya Dimas Saputra",
	Course:      "Praktikum Kecerdasan Buatan",
	ImageURL:    "https://img.icons8.com/color/480/car--v1.png",
}
