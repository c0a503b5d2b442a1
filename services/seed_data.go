package services

import "github.com/dgf281219-blip/metodo/models"

var seedFoods = []models.Food{
	// Frutas
	{FoodID: "f001", Name: "Maçã", Category: "Frutas", CaloriesPer100g: 52, DetoxFriendly: true},
	{FoodID: "f002", Name: "Banana", Category: "Frutas", CaloriesPer100g: 89, DetoxFriendly: true},
	{FoodID: "f003", Name: "Melancia", Category: "Frutas", CaloriesPer100g: 30, DetoxFriendly: true},
	{FoodID: "f004", Name: "Morango", Category: "Frutas", CaloriesPer100g: 32, DetoxFriendly: true},
	{FoodID: "f005", Name: "Mamão", Category: "Frutas", CaloriesPer100g: 43, DetoxFriendly: true},
	{FoodID: "f006", Name: "Abacaxi", Category: "Frutas", CaloriesPer100g: 50, DetoxFriendly: true},
	{FoodID: "f007", Name: "Laranja", Category: "Frutas", CaloriesPer100g: 47, DetoxFriendly: true},
	{FoodID: "f008", Name: "Uva", Category: "Frutas", CaloriesPer100g: 69, DetoxFriendly: true},
	{FoodID: "f009", Name: "Manga", Category: "Frutas", CaloriesPer100g: 60, DetoxFriendly: true},
	{FoodID: "f010", Name: "Pera", Category: "Frutas", CaloriesPer100g: 57, DetoxFriendly: true},
	{FoodID: "f011", Name: "Kiwi", Category: "Frutas", CaloriesPer100g: 61, DetoxFriendly: true},
	{FoodID: "f012", Name: "Abacate", Category: "Frutas", CaloriesPer100g: 160, DetoxFriendly: true},
	{FoodID: "f013", Name: "Melão", Category: "Frutas", CaloriesPer100g: 34, DetoxFriendly: true},
	{FoodID: "f014", Name: "Goiaba", Category: "Frutas", CaloriesPer100g: 68, DetoxFriendly: true},
	{FoodID: "f015", Name: "Ameixa", Category: "Frutas", CaloriesPer100g: 46, DetoxFriendly: true},
	{FoodID: "f016", Name: "Pêssego", Category: "Frutas", CaloriesPer100g: 39, DetoxFriendly: true},
	{FoodID: "f017", Name: "Caqui", Category: "Frutas", CaloriesPer100g: 70, DetoxFriendly: true},
	{FoodID: "f018", Name: "Framboesa", Category: "Frutas", CaloriesPer100g: 52, DetoxFriendly: true},
	{FoodID: "f019", Name: "Mirtilo", Category: "Frutas", CaloriesPer100g: 57, DetoxFriendly: true},
	{FoodID: "f020", Name: "Cereja", Category: "Frutas", CaloriesPer100g: 50, DetoxFriendly: true},

	// Verduras e legumes
	{FoodID: "v001", Name: "Alface", Category: "Verduras", CaloriesPer100g: 15, DetoxFriendly: true},
	{FoodID: "v002", Name: "Couve", Category: "Verduras", CaloriesPer100g: 33, DetoxFriendly: true},
	{FoodID: "v003", Name: "Brócolis", Category: "Verduras", CaloriesPer100g: 34, DetoxFriendly: true},
	{FoodID: "v004", Name: "Espinafre", Category: "Verduras", CaloriesPer100g: 23, DetoxFriendly: true},
	{FoodID: "v005", Name: "Tomate", Category: "Verduras", CaloriesPer100g: 18, DetoxFriendly: true},
	{FoodID: "v006", Name: "Cenoura", Category: "Verduras", CaloriesPer100g: 41, DetoxFriendly: true},
	{FoodID: "v007", Name: "Pepino", Category: "Verduras", CaloriesPer100g: 15, DetoxFriendly: true},
	{FoodID: "v008", Name: "Beterraba", Category: "Verduras", CaloriesPer100g: 43, DetoxFriendly: true},
	{FoodID: "v009", Name: "Abobrinha", Category: "Verduras", CaloriesPer100g: 17, DetoxFriendly: true},
	{FoodID: "v010", Name: "Berinjela", Category: "Verduras", CaloriesPer100g: 25, DetoxFriendly: true},
	{FoodID: "v011", Name: "Pimentão", Category: "Verduras", CaloriesPer100g: 20, DetoxFriendly: true},
	{FoodID: "v012", Name: "Rúcula", Category: "Verduras", CaloriesPer100g: 25, DetoxFriendly: true},
	{FoodID: "v013", Name: "Agrião", Category: "Verduras", CaloriesPer100g: 11, DetoxFriendly: true},
	{FoodID: "v014", Name: "Repolho", Category: "Verduras", CaloriesPer100g: 25, DetoxFriendly: true},
	{FoodID: "v015", Name: "Couve-flor", Category: "Verduras", CaloriesPer100g: 25, DetoxFriendly: true},
	{FoodID: "v016", Name: "Rabanete", Category: "Verduras", CaloriesPer100g: 16, DetoxFriendly: true},
	{FoodID: "v017", Name: "Nabo", Category: "Verduras", CaloriesPer100g: 28, DetoxFriendly: true},
	{FoodID: "v018", Name: "Vagem", Category: "Verduras", CaloriesPer100g: 31, DetoxFriendly: true},
	{FoodID: "v019", Name: "Aspargo", Category: "Verduras", CaloriesPer100g: 20, DetoxFriendly: true},
	{FoodID: "v020", Name: "Acelga", Category: "Verduras", CaloriesPer100g: 19, DetoxFriendly: true},

	// Grãos sem glúten
	{FoodID: "g001", Name: "Arroz Integral", Category: "Grãos", CaloriesPer100g: 111, DetoxFriendly: true},
	{FoodID: "g002", Name: "Quinoa", Category: "Grãos", CaloriesPer100g: 120, DetoxFriendly: true},
	{FoodID: "g003", Name: "Amaranto", Category: "Grãos", CaloriesPer100g: 102, DetoxFriendly: true},
	{FoodID: "g004", Name: "Batata Doce", Category: "Grãos", CaloriesPer100g: 86, DetoxFriendly: true},
	{FoodID: "g005", Name: "Mandioca", Category: "Grãos", CaloriesPer100g: 160, DetoxFriendly: true},
	{FoodID: "g006", Name: "Inhame", Category: "Grãos", CaloriesPer100g: 118, DetoxFriendly: true},
	{FoodID: "g007", Name: "Aveia sem Glúten", Category: "Grãos", CaloriesPer100g: 389, DetoxFriendly: true},
	{FoodID: "g008", Name: "Tapioca", Category: "Grãos", CaloriesPer100g: 358, DetoxFriendly: true},
	{FoodID: "g009", Name: "Polenta", Category: "Grãos", CaloriesPer100g: 70, DetoxFriendly: true},
	{FoodID: "g010", Name: "Feijão", Category: "Grãos", CaloriesPer100g: 127, DetoxFriendly: true},

	// Proteínas naturais
	{FoodID: "p001", Name: "Peito de Frango Grelhado", Category: "Proteínas", CaloriesPer100g: 165, DetoxFriendly: true},
	{FoodID: "p002", Name: "Peixe Grelhado (Tilápia)", Category: "Proteínas", CaloriesPer100g: 96, DetoxFriendly: true},
	{FoodID: "p003", Name: "Salmão", Category: "Proteínas", CaloriesPer100g: 208, DetoxFriendly: true},
	{FoodID: "p004", Name: "Ovo Cozido", Category: "Proteínas", CaloriesPer100g: 155, DetoxFriendly: true},
	{FoodID: "p005", Name: "Atum", Category: "Proteínas", CaloriesPer100g: 144, DetoxFriendly: true},
	{FoodID: "p006", Name: "Peru", Category: "Proteínas", CaloriesPer100g: 135, DetoxFriendly: true},
	{FoodID: "p007", Name: "Tofu", Category: "Proteínas", CaloriesPer100g: 76, DetoxFriendly: true},
	{FoodID: "p008", Name: "Lentilha", Category: "Proteínas", CaloriesPer100g: 116, DetoxFriendly: true},
	{FoodID: "p009", Name: "Grão de Bico", Category: "Proteínas", CaloriesPer100g: 164, DetoxFriendly: true},
	{FoodID: "p010", Name: "Ervilha", Category: "Proteínas", CaloriesPer100g: 81, DetoxFriendly: true},
	{FoodID: "p011", Name: "Sardinha", Category: "Proteínas", CaloriesPer100g: 208, DetoxFriendly: true},
	{FoodID: "p012", Name: "Camarão", Category: "Proteínas", CaloriesPer100g: 99, DetoxFriendly: true},
	{FoodID: "p013", Name: "Cottage Cheese", Category: "Proteínas", CaloriesPer100g: 98, DetoxFriendly: true},
	{FoodID: "p014", Name: "Ricota", Category: "Proteínas", CaloriesPer100g: 174, DetoxFriendly: true},
	{FoodID: "p015", Name: "Cogumelo", Category: "Proteínas", CaloriesPer100g: 22, DetoxFriendly: true},

	// Sucos detox
	{FoodID: "s001", Name: "Suco Verde (Couve, Limão, Maçã)", Category: "Sucos", CaloriesPer100g: 45, DetoxFriendly: true},
	{FoodID: "s002", Name: "Suco de Melancia", Category: "Sucos", CaloriesPer100g: 30, DetoxFriendly: true},
	{FoodID: "s003", Name: "Suco de Laranja Natural", Category: "Sucos", CaloriesPer100g: 45, DetoxFriendly: true},
	{FoodID: "s004", Name: "Suco Detox (Pepino, Hortelã, Limão)", Category: "Sucos", CaloriesPer100g: 20, DetoxFriendly: true},
	{FoodID: "s005", Name: "Água de Coco", Category: "Sucos", CaloriesPer100g: 19, DetoxFriendly: true},
	{FoodID: "s006", Name: "Suco de Abacaxi com Hortelã", Category: "Sucos", CaloriesPer100g: 50, DetoxFriendly: true},
	{FoodID: "s007", Name: "Suco de Beterraba", Category: "Sucos", CaloriesPer100g: 43, DetoxFriendly: true},
	{FoodID: "s008", Name: "Suco de Cenoura", Category: "Sucos", CaloriesPer100g: 40, DetoxFriendly: true},
	{FoodID: "s009", Name: "Limonada Natural", Category: "Sucos", CaloriesPer100g: 25, DetoxFriendly: true},
	{FoodID: "s010", Name: "Chá Verde Gelado", Category: "Sucos", CaloriesPer100g: 1, DetoxFriendly: true},

	// Lanches saudáveis
	{FoodID: "l001", Name: "Castanha do Pará", Category: "Lanches", CaloriesPer100g: 656, DetoxFriendly: true},
	{FoodID: "l002", Name: "Amêndoas", Category: "Lanches", CaloriesPer100g: 579, DetoxFriendly: true},
	{FoodID: "l003", Name: "Nozes", Category: "Lanches", CaloriesPer100g: 654, DetoxFriendly: true},
	{FoodID: "l004", Name: "Iogurte Natural", Category: "Lanches", CaloriesPer100g: 61, DetoxFriendly: true},
	{FoodID: "l005", Name: "Chia", Category: "Lanches", CaloriesPer100g: 486, DetoxFriendly: true},
	{FoodID: "l006", Name: "Linhaça", Category: "Lanches", CaloriesPer100g: 534, DetoxFriendly: true},
	{FoodID: "l007", Name: "Tâmaras", Category: "Lanches", CaloriesPer100g: 277, DetoxFriendly: true},
	{FoodID: "l008", Name: "Damascos Secos", Category: "Lanches", CaloriesPer100g: 241, DetoxFriendly: true},
	{FoodID: "l009", Name: "Pasta de Amendoim Natural", Category: "Lanches", CaloriesPer100g: 588, DetoxFriendly: true},
	{FoodID: "l010", Name: "Hummus", Category: "Lanches", CaloriesPer100g: 166, DetoxFriendly: true},
	{FoodID: "l011", Name: "Pipoca sem Óleo", Category: "Lanches", CaloriesPer100g: 382, DetoxFriendly: true},
	{FoodID: "l012", Name: "Mix de Sementes", Category: "Lanches", CaloriesPer100g: 550, DetoxFriendly: true},
	{FoodID: "l013", Name: "Granola sem Açúcar", Category: "Lanches", CaloriesPer100g: 471, DetoxFriendly: true},
	{FoodID: "l014", Name: "Coco Fresco", Category: "Lanches", CaloriesPer100g: 354, DetoxFriendly: true},
	{FoodID: "l015", Name: "Azeitona", Category: "Lanches", CaloriesPer100g: 115, DetoxFriendly: true},
}

var seedActivities = []models.Activity{
	{ActivityID: "a001", Name: "Musculação", METValue: 5.0, Category: "Academia"},
	{ActivityID: "a002", Name: "Caminhada Leve", METValue: 3.0, Category: "Cardio"},
	{ActivityID: "a003", Name: "Caminhada Moderada", METValue: 4.0, Category: "Cardio"},
	{ActivityID: "a004", Name: "Caminhada Intensa", METValue: 5.0, Category: "Cardio"},
	{ActivityID: "a005", Name: "Corrida Leve", METValue: 7.0, Category: "Cardio"},
	{ActivityID: "a006", Name: "Corrida Moderada", METValue: 9.0, Category: "Cardio"},
	{ActivityID: "a007", Name: "Corrida Intensa", METValue: 11.0, Category: "Cardio"},
	{ActivityID: "a008", Name: "Yoga", METValue: 3.0, Category: "Flexibilidade"},
	{ActivityID: "a009", Name: "Pilates", METValue: 3.5, Category: "Flexibilidade"},
	{ActivityID: "a010", Name: "Alongamento", METValue: 2.5, Category: "Flexibilidade"},
	{ActivityID: "a011", Name: "Vácuo Abdominal", METValue: 3.5, Category: "Core"},
	{ActivityID: "a012", Name: "Dança", METValue: 6.0, Category: "Cardio"},
	{ActivityID: "a013", Name: "Natação Leve", METValue: 6.0, Category: "Cardio"},
	{ActivityID: "a014", Name: "Natação Intensa", METValue: 9.0, Category: "Cardio"},
	{ActivityID: "a015", Name: "Ciclismo Leve", METValue: 5.5, Category: "Cardio"},
	{ActivityID: "a016", Name: "Ciclismo Moderado", METValue: 7.0, Category: "Cardio"},
	{ActivityID: "a017", Name: "Ciclismo Intenso", METValue: 10.0, Category: "Cardio"},
	{ActivityID: "a018", Name: "Meditação", METValue: 1.3, Category: "Mente"},
	{ActivityID: "a019", Name: "Jump", METValue: 8.0, Category: "Cardio"},
	{ActivityID: "a020", Name: "Futebol", METValue: 7.0, Category: "Esportes"},
}
