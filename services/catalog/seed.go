package catalog

import "petsitter/models"

// Default listing images per service category, used when a new listing is
// added without one.
var defaultImages = map[models.ServiceType]string{
	models.ServiceWalking:  "https://images.unsplash.com/photo-1601758228041-f3b2795255f1?auto=format&fit=crop&q=80&w=800",
	models.ServiceBoarding: "https://images.unsplash.com/photo-1541781774459-bb2af2f05b55?auto=format&fit=crop&q=80&w=800",
	models.ServiceGrooming: "https://images.unsplash.com/photo-1516734212186-a967f81ad0d7?auto=format&fit=crop&q=80&w=800",
	models.ServiceSitting:  "https://images.unsplash.com/photo-1450778869180-41d0601e046e?auto=format&fit=crop&q=80&w=800",
}

func defaultImage(serviceType models.ServiceType) string {
	if img, ok := defaultImages[serviceType]; ok {
		return img
	}
	return defaultImages[models.ServiceWalking]
}

// seedSitters is the fixed built-in set of sitter offers.
func seedSitters() []models.Listing {
	return []models.Listing{
		{
			ID:          1,
			Kind:        models.KindSitter,
			Title:       "Plimbător de Câini Experimentat",
			Name:        "Maria Popescu",
			Description: "Sunt o pasionată de animale și ofer servicii de plimbare pentru câini de toate taliile. Am experiență în dresaj de bază și mă asigur că patrupedul tău are parte de o plimbare sigură și distractivă.",
			Location:    "București",
			Price:       25,
			Currency:    "RON",
			ServiceType: models.ServiceWalking,
			Image:       "https://images.unsplash.com/photo-1552053831-71594a27632d?auto=format&fit=crop&q=80&w=800",
			Rating:      5.0, ReviewsCount: 12,
		},
		{
			ID:          2,
			Kind:        models.KindSitter,
			Title:       "Îngrijire Pisici la Domiciliu",
			Name:        "Andrei Ionescu",
			Description: "Ofer cazare și îngrijire la domiciliul meu pentru pisici. Iubesc felinele și mă voi asigura că se simt ca acasă cât timp ești plecat, oferindu-le atenție, joacă și hrană la timp.",
			Location:    "Cluj-Napoca",
			Price:       30,
			Currency:    "RON",
			ServiceType: models.ServiceBoarding,
			Image:       "https://images.unsplash.com/photo-1514888286974-6c03e2ca1dba?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8, ReviewsCount: 8,
		},
		{
			ID:          3,
			Kind:        models.KindSitter,
			Title:       "Grooming Profesional Complet",
			Name:        "Elena Dumitrescu",
			Description: "Sunt groomer certificat și ofer servicii profesionale de tuns și aranjat pentru cățelul tău. Mă concentrez pe confortul animalului și folosesc produse blânde, de calitate superioară.",
			Location:    "Timișoara",
			Price:       150,
			Currency:    "RON",
			ServiceType: models.ServiceGrooming,
			Image:       "https://images.unsplash.com/photo-1583337130417-3346a1be7dee?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9, ReviewsCount: 24,
		},
		{
			ID:          4,
			Kind:        models.KindSitter,
			Title:       "Plimbări de Seară",
			Name:        "Bogdan Popa",
			Description: "Ofer servicii de plimbare pentru câini în timpul serii. Sunt calm și răbdător cu animalele anxioase.",
			Location:    "Brașov",
			Price:       20,
			Currency:    "RON",
			ServiceType: models.ServiceWalking,
			Image:       "https://images.unsplash.com/photo-1583511655826-05700d52f4d9?auto=format&fit=crop&q=80&w=800",
			Rating:      4.7, ReviewsCount: 15,
		},
		{
			ID:          5,
			Kind:        models.KindSitter,
			Title:       "Cazare Confortabilă pentru Animale",
			Name:        "Cristina Georgescu",
			Description: "Ofer cazare pentru căței și pisici într-un mediu familial, fără cuști. Curte mare disponibilă.",
			Location:    "București",
			Price:       60,
			Currency:    "RON",
			ServiceType: models.ServiceBoarding,
			Image:       "https://images.unsplash.com/photo-1596492784531-6e6eb5ea9993?auto=format&fit=crop&q=80&w=800",
			Rating:      5.0, ReviewsCount: 10,
		},
		{
			ID:          6,
			Kind:        models.KindSitter,
			Title:       "Spălat și Periat Profesional",
			Name:        "Radu Mihail",
			Description: "Servicii de cosmetică canină și felină. Folosesc doar produse premium, non-alergenice.",
			Location:    "Sibiu",
			Price:       100,
			Currency:    "RON",
			ServiceType: models.ServiceGrooming,
			Image:       "https://images.unsplash.com/photo-1535930891776-0c2dfb7fda1a?auto=format&fit=crop&q=80&w=800",
			Rating:      4.6, ReviewsCount: 18,
		},
		{
			ID:          7,
			Kind:        models.KindSitter,
			Title:       "Însoțitor pentru Câini Activi",
			Name:        "Ioana Stancu",
			Description: "Dacă ai un câine cu multă energie, eu sunt persoana potrivită! Facem jogging și alergări în parc.",
			Location:    "Cluj-Napoca",
			Price:       35,
			Currency:    "RON",
			ServiceType: models.ServiceWalking,
			Image:       "https://images.unsplash.com/photo-1544568100-847a948585b9?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9, ReviewsCount: 30,
		},
		{
			ID:          8,
			Kind:        models.KindSitter,
			Title:       "Pensionară Iubitoare de Animale",
			Name:        "Anca Marin",
			Description: "Am timp liber și multă dragoste de oferit. Pot avea grijă de animalul tău pe parcursul zilei sau nopții.",
			Location:    "Brașov",
			Price:       45,
			Currency:    "RON",
			ServiceType: models.ServiceBoarding,
			Image:       "https://images.unsplash.com/photo-1537151608828-ea2b11777ee8?auto=format&fit=crop&q=80&w=800",
			Rating:      5.0, ReviewsCount: 5,
		},
		{
			ID:          9,
			Kind:        models.KindSitter,
			Title:       "Tuns Igienic și Stilizat",
			Name:        "David Niculescu",
			Description: "Groomer cu experiență de 5 ani. Ofer tuns de întreținere sau pentru concursuri.",
			Location:    "București",
			Price:       120,
			Currency:    "RON",
			ServiceType: models.ServiceGrooming,
			Image:       "https://images.unsplash.com/photo-1516734212186-a967f81ad0d7?auto=format&fit=crop&q=80&w=800",
			Rating:      4.8, ReviewsCount: 22,
		},
		{
			ID:          10,
			Kind:        models.KindSitter,
			Title:       "Plimbări de Weekend",
			Name:        "Stefan Rădulescu",
			Description: "Disponibil sâmbăta și duminica pentru plimbări lungi în natură. Iubesc toate rasele.",
			Location:    "Timișoara",
			Price:       25,
			Currency:    "RON",
			ServiceType: models.ServiceWalking,
			Image:       "https://images.unsplash.com/photo-1534361960057-19889db9621e?auto=format&fit=crop&q=80&w=800",
			Rating:      4.9, ReviewsCount: 14,
		},
	}
}

// seedPetAds is the fixed built-in set of pet-sitting requests.
func seedPetAds() []models.Listing {
	return []models.Listing{
		{
			ID:          1,
			Kind:        models.KindPetAd,
			Title:       "Need sitter for friendly Golden Retriever",
			Name:        "Maria Ionescu",
			Contact:     "maria.ionescu@example.com",
			Description: "Max is a 3-year-old Golden Retriever who loves playing fetch and going for walks. He's very friendly with other dogs and children. Looking for someone to take care of him while I'm away on business.",
			Location:    "Bucharest, Romania",
			Price:       50,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1633722715463-d30f4f325e24?w=800",
			Pet: &models.PetInfo{
				Name: "Max", Type: "dog", Breed: "Golden Retriever",
				StartDate: "2026-02-15", EndDate: "2026-02-20",
				SpecialNeeds: "Needs to be walked twice daily",
			},
		},
		{
			ID:          2,
			Kind:        models.KindPetAd,
			Title:       "Looking for cat sitter - Siamese cat",
			Name:        "Andrei Popescu",
			Contact:     "andrei.popescu@example.com",
			Description: "Luna is a beautiful 2-year-old Siamese cat. She's very affectionate and loves attention. She's indoor only and needs someone to visit once a day to feed and play with her.",
			Location:    "Cluj-Napoca, Romania",
			Price:       30,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1513245543132-31f507417b26?w=800",
			Pet: &models.PetInfo{
				Name: "Luna", Type: "cat", Breed: "Siamese",
				StartDate: "2026-02-10", EndDate: "2026-02-14",
			},
		},
		{
			ID:          3,
			Kind:        models.KindPetAd,
			Title:       "German Shepherd needs experienced sitter",
			Name:        "Elena Dumitrescu",
			Contact:     "elena.dumitrescu@example.com",
			Description: "Rex is a well-trained 5-year-old German Shepherd. He needs an experienced sitter who can handle large dogs. He's protective but very loyal and well-behaved.",
			Location:    "Brasov, Romania",
			Price:       70,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1568572933382-74d440642117?w=800",
			Pet: &models.PetInfo{
				Name: "Rex", Type: "dog", Breed: "German Shepherd",
				StartDate: "2026-03-01", EndDate: "2026-03-10",
				SpecialNeeds: "Experience with large breeds required",
			},
		},
		{
			ID:          4,
			Kind:        models.KindPetAd,
			Title:       "Persian cat needs daily grooming",
			Name:        "Cristina Marin",
			Contact:     "cristina.marin@example.com",
			Description: "Mimi is a fluffy 4-year-old Persian cat who requires daily grooming. She's very calm and loves to cuddle. Looking for someone who can spend quality time with her.",
			Location:    "Timisoara, Romania",
			Price:       40,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1589883661923-6476cb0ae9f2?w=800",
			Pet: &models.PetInfo{
				Name: "Mimi", Type: "cat", Breed: "Persian",
				StartDate: "2026-02-18", EndDate: "2026-02-25",
				SpecialNeeds: "Daily grooming required",
			},
		},
		{
			ID:          5,
			Kind:        models.KindPetAd,
			Title:       "Energetic Labrador needs active sitter",
			Name:        "Mihai Stanciu",
			Contact:     "mihai.stanciu@example.com",
			Description: "Buddy is a 2-year-old Labrador full of energy! He needs someone who can keep up with his playful nature and take him on long walks or to the park.",
			Location:    "Iasi, Romania",
			Price:       55,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1587300003388-59208cc962cb?w=800",
			Pet: &models.PetInfo{
				Name: "Buddy", Type: "dog", Breed: "Labrador Retriever",
				StartDate: "2026-02-22", EndDate: "2026-02-28",
				SpecialNeeds: "Needs lots of exercise and playtime",
			},
		},
		{
			ID:          6,
			Kind:        models.KindPetAd,
			Title:       "Large Maine Coon needs experienced cat lover",
			Name:        "Alexandra Popa",
			Contact:     "alexandra.popa@example.com",
			Description: "Whiskers is a gentle giant! He's a 6-year-old Maine Coon who loves to chat and follow you around. He's very friendly but needs someone familiar with large cat breeds.",
			Location:    "Constanta, Romania",
			Price:       45,
			Currency:    "RON",
			ServiceType: models.ServiceSitting,
			Image:       "https://images.unsplash.com/photo-1606214174585-fe31582dc6ee?w=800",
			Pet: &models.PetInfo{
				Name: "Whiskers", Type: "cat", Breed: "Maine Coon",
				StartDate: "2026-03-05", EndDate: "2026-03-12",
			},
		},
	}
}
